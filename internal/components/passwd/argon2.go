package passwd

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Hash is a decoded PHC string: $argon2id$v=19$m=..,t=..,p=..$salt$key
type argon2Hash struct {
	variant string
	params  Argon2Params
	salt    []byte
	key     []byte
}

func newArgon2Hash(password string, params Argon2Params, entropy io.Reader) (*argon2Hash, error) {
	salt := make([]byte, params.SaltLength)
	if _, err := io.ReadFull(entropy, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return &argon2Hash{
		variant: "argon2id",
		params:  params,
		salt:    salt,
		key:     argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Parallelism, params.KeyLength),
	}, nil
}

func (h *argon2Hash) encode() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		h.variant,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

func decodeArgon2Hash(encoded string) (*argon2Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, ErrMalformedHash
	}

	h := &argon2Hash{variant: parts[1]}
	if h.variant != "argon2id" && h.variant != "argon2i" {
		return nil, fmt.Errorf("%w: variant %q", ErrUnsupportedAlgorithm, h.variant)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: argon2 version %d", ErrUnsupportedAlgorithm, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Time, &h.params.Parallelism); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if h.params.Time == 0 || h.params.Parallelism == 0 {
		return nil, ErrMalformedHash
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	if len(h.key) == 0 {
		return nil, ErrMalformedHash
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	return h, nil
}

// matches derives a key from password with the hash's own parameters.
func (h *argon2Hash) matches(password string) bool {
	var derived []byte
	if h.variant == "argon2i" {
		derived = argon2.Key([]byte(password), h.salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	} else {
		derived = argon2.IDKey([]byte(password), h.salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	}
	return subtle.ConstantTimeCompare(derived, h.key) == 1
}
