package passwd

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

func newDigest(a Algorithm) (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	case MD5:
		return md5.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case BLAKE2b:
		return blake2b.New512(nil)
	case BLAKE2s:
		return blake2s.New256(nil)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
}

// newDigestSalt returns digestSaltLength lowercase hex characters.
func newDigestSalt(entropy io.Reader) (string, error) {
	buf := make([]byte, digestSaltLength/2)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// saltedDigest returns hex(H(password || salt)).
func saltedDigest(a Algorithm, password, salt string) (string, error) {
	h, err := newDigest(a)
	if err != nil {
		return "", err
	}
	h.Write([]byte(password))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil)), nil
}

func digestMatches(a Algorithm, password, salt, want string) bool {
	got, err := saltedDigest(a, password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
