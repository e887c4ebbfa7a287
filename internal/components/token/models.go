package token

import (
	"errors"
	"fmt"
)

const (
	// EnvKey is the variable the generated hash is assigned to.
	EnvKey = "ACCESS_TOKEN"

	instructions = "Copy this line into the .env file:"
)

var ErrMismatch = errors.New("password does not match hash")

type (
	Token struct {
		Key   string
		Value string
	}
)

// Line renders the token as a single-quoted .env assignment.
func (t Token) Line() string {
	return fmt.Sprintf("%s='%s'", t.Key, t.Value)
}
