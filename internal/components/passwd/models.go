package passwd

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported hashing algorithm")
	ErrMalformedHash        = errors.New("malformed password hash")
)

type (
	// Algorithm names a hashing scheme. The name is also the prefix of every
	// hash produced with it.
	Algorithm string

	// Argon2Params are the argon2id cost parameters used for new hashes.
	// Memory is in KiB.
	Argon2Params struct {
		Memory      uint32
		Time        uint32
		Parallelism uint8
		SaltLength  uint32
		KeyLength   uint32
	}
)

const (
	Argon2   Algorithm = "argon2"
	SHA1     Algorithm = "sha1"
	SHA224   Algorithm = "sha224"
	SHA256   Algorithm = "sha256"
	SHA384   Algorithm = "sha384"
	SHA512   Algorithm = "sha512"
	MD5      Algorithm = "md5"
	SHA3_256 Algorithm = "sha3_256"
	SHA3_512 Algorithm = "sha3_512"
	BLAKE2b  Algorithm = "blake2b"
	BLAKE2s  Algorithm = "blake2s"

	DefaultAlgorithm = Argon2

	// digestSaltLength is the number of hex characters in a digest salt.
	digestSaltLength = 12
)

// DefaultArgon2Params match the cost settings Jupyter servers use, so the
// resulting tokens verify there as well.
var DefaultArgon2Params = Argon2Params{
	Memory:      10240,
	Time:        10,
	Parallelism: 8,
	SaltLength:  16,
	KeyLength:   32,
}

// Algorithms lists every supported scheme, default first.
func Algorithms() []Algorithm {
	return []Algorithm{Argon2, SHA1, SHA224, SHA256, SHA384, SHA512, MD5, SHA3_256, SHA3_512, BLAKE2b, BLAKE2s}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	candidate := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms() {
		if a == candidate {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

func (a Algorithm) String() string {
	return string(a)
}
