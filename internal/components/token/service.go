package token

import (
	"fmt"
	"io"

	"github.com/andrasnagy-data/accesstoken/internal/components/passwd"
	"github.com/rs/zerolog"
)

type (
	servicer interface {
		Generate(string, passwd.Algorithm) (Token, error)
		Write(io.Writer, Token) error
		Verify(string, string) bool
	}
	service struct {
		hasher passwd.Hasher
		logger zerolog.Logger
	}
)

func NewService(hasher passwd.Hasher, logger zerolog.Logger) servicer {
	return &service{
		hasher: hasher,
		logger: logger.With().Str("component", "token").Logger(),
	}
}

// Generate hashes password into an access token
func (s *service) Generate(password string, algorithm passwd.Algorithm) (Token, error) {
	hashed, err := s.hasher.Hash(password, algorithm)
	if err != nil {
		return Token{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.logger.Debug().
		Str("algorithm", algorithm.String()).
		Int("length", len(hashed)).
		Msg("Access token generated")

	return Token{Key: EnvKey, Value: hashed}, nil
}

// Write prints the copy instructions followed by the .env line
func (s *service) Write(w io.Writer, token Token) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", instructions, token.Line())
	return err
}

func (s *service) Verify(password, hashed string) bool {
	ok := s.hasher.Check(hashed, password)
	s.logger.Debug().Bool("match", ok).Msg("Access token verified")
	return ok
}
