package passwd

import (
	"crypto/rand"
	"io"
	"strings"
)

type (
	Hasher interface {
		Hash(password string, algorithm Algorithm) (string, error)
		Check(hashed, password string) bool
	}
	hasher struct {
		params  Argon2Params
		entropy io.Reader
	}
)

func NewHasher(params Argon2Params) Hasher {
	return &hasher{
		params:  params,
		entropy: rand.Reader,
	}
}

// Hash returns a salted hash of password prefixed with the algorithm name.
// An empty algorithm selects DefaultAlgorithm. Empty passwords are hashed like any other.
func (h *hasher) Hash(password string, algorithm Algorithm) (string, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}

	if algorithm == Argon2 {
		encoded, err := newArgon2Hash(password, h.params, h.entropy)
		if err != nil {
			return "", err
		}
		return string(Argon2) + ":" + encoded.encode(), nil
	}

	// Reject unknown names before drawing a salt
	if _, err := newDigest(algorithm); err != nil {
		return "", err
	}
	salt, err := newDigestSalt(h.entropy)
	if err != nil {
		return "", err
	}
	digest, err := saltedDigest(algorithm, password, salt)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{string(algorithm), salt, digest}, ":"), nil
}

// Check reports whether password matches a hash produced by Hash.
// Malformed hashes never match.
func (h *hasher) Check(hashed, password string) bool {
	if encoded, ok := strings.CutPrefix(hashed, string(Argon2)+":"); ok {
		decoded, err := decodeArgon2Hash(encoded)
		if err != nil {
			return false
		}
		return decoded.matches(password)
	}

	parts := strings.SplitN(hashed, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return false
	}
	return digestMatches(Algorithm(parts[0]), password, parts[1], parts[2])
}
