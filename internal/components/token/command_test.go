package token

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/andrasnagy-data/accesstoken/internal/shared/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenLine = regexp.MustCompile(`^ACCESS_TOKEN='[^']+'$`)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewCommand(params{
		Service: newTestService(),
		Config:  &config.Config{Version: "1.2.3"},
		Logger:  zerolog.Nop(),
	})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandGeneratesToken(t *testing.T) {
	stdout, stderr, err := execute(t, "-p", "hunter2")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Copy this line into the .env file:", lines[0])
	assert.Regexp(t, tokenLine, lines[1])
	assert.True(t, strings.HasPrefix(lines[1], "ACCESS_TOKEN='argon2:$argon2id$v=19$"))
}

func TestCommandLongFlagAndAlgorithm(t *testing.T) {
	stdout, _, err := execute(t, "--password", "hunter2", "--algorithm", "SHA256")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^ACCESS_TOKEN='sha256:[0-9a-f]{12}:[0-9a-f]{64}'$`), stdout)
}

func TestCommandMissingPassword(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.Error(t, err)

	assert.Contains(t, err.Error(), `required flag(s) "password" not set`)
	assert.Contains(t, stderr, "Error:")
	// Usage is printed to the command's output stream
	assert.Contains(t, stdout, "Usage:")
	assert.NotContains(t, stdout, "ACCESS_TOKEN")
}

func TestCommandRejectsUnknownAlgorithm(t *testing.T) {
	stdout, _, err := execute(t, "-p", "hunter2", "-a", "rot13")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "unsupported hashing algorithm")
	assert.Contains(t, stdout, "Usage:")
	assert.NotContains(t, stdout, "ACCESS_TOKEN")
}

func TestCommandEmptyPassword(t *testing.T) {
	stdout, stderr, err := execute(t, "-p", "")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, tokenLine, lines[1])

	value := strings.TrimSuffix(strings.TrimPrefix(lines[1], "ACCESS_TOKEN='"), "'")
	assert.True(t, newTestService().Verify("", value))
}

func TestCommandRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "-p", "hunter2", "extra")
	assert.Error(t, err)
}

func TestCommandVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestVerifyCommand(t *testing.T) {
	token, err := newTestService().Generate("hunter2", "sha1")
	require.NoError(t, err)

	stdout, _, err := execute(t, "verify", "-p", "hunter2", "--hash", token.Value)
	require.NoError(t, err)
	assert.Equal(t, "match\n", stdout)

	stdout, stderr, err := execute(t, "verify", "-p", "hunter3", "--hash", token.Value)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, "mismatch\n", stdout)
	assert.Contains(t, stderr, "password does not match hash")
}

func TestVerifyCommandRequiresHash(t *testing.T) {
	_, _, err := execute(t, "verify", "-p", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "hash" not set`)
}
