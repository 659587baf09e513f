//go:build unit
// +build unit

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs args against a fresh command tree and returns everything the handler logged.
// Handlers log failures instead of returning them, so the log is what tests assert on.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	loggerInstance, logs := testutil.NewBufferLogger(t)
	handler, err := newTextbookRSACommandHandler(loggerInstance)
	require.NoError(t, err)

	rootCmd := &cobra.Command{Use: "textbook-rsa-cli"}
	registerTextbookRSACommands(rootCmd, handler)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return logs.String()
}

func TestEncryptDecryptCommands(t *testing.T) {
	dir := t.TempDir()
	message := testutil.WriteTempFile(t, "message.txt", "Hello, textbook RSA!\n")
	encrypted := filepath.Join(dir, "message_encrypted.txt")
	decrypted := filepath.Join(dir, "message_decrypted.txt")

	keyArgs := []string{"--mode", "factors", "--p", "61", "--q", "53", "--e", "17"}

	logs := execute(t, append([]string{"encrypt", "--input-file", message, "--output-file", encrypted}, keyArgs...)...)
	assert.NotContains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "Encrypted data path")

	content, err := os.ReadFile(encrypted)
	require.NoError(t, err)
	lines := strings.Fields(string(content))
	assert.Len(t, lines, len("Hello, textbook RSA!\n"))
	assert.Equal(t, "3000", lines[0])

	logs = execute(t, append([]string{"decrypt", "--input-file", encrypted, "--output-file", decrypted}, keyArgs...)...)
	assert.NotContains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "Decrypted data path")

	content, err = os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, "Hello, textbook RSA!\n", string(content))
}

func TestEncryptCommand_OutOfRangeWritesNothing(t *testing.T) {
	message := testutil.WriteTempFile(t, "message.txt", "d")
	encrypted := filepath.Join(t.TempDir(), "message_encrypted.txt")

	logs := execute(t, "encrypt", "--mode", "factors", "--p", "3", "--q", "2", "--input-file", message, "--output-file", encrypted)
	assert.Contains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "is out of range for n=6")
	assert.NotContains(t, logs, "Encrypted data path")

	_, err := os.Stat(encrypted)
	assert.True(t, os.IsNotExist(err))
}

func TestEncryptCommand_InvalidFactors(t *testing.T) {
	message := testutil.WriteTempFile(t, "message.txt", "hello")
	encrypted := filepath.Join(t.TempDir(), "message_encrypted.txt")

	logs := execute(t, "encrypt", "--mode", "factors", "--p", "4", "--q", "7", "--input-file", message, "--output-file", encrypted)
	assert.Contains(t, logs, "level=ERROR")
	assert.Contains(t, logs, keys.ErrInvalidFactors.Error())

	_, err := os.Stat(encrypted)
	assert.True(t, os.IsNotExist(err))
}

func TestSignVerifyCommands(t *testing.T) {
	message := testutil.WriteTempFile(t, "message.txt", "sign me")
	signature := filepath.Join(t.TempDir(), "signature.txt")
	keyArgs := []string{"--mode", "modulus", "--n", "3233", "--e", "17"}

	logs := execute(t, append([]string{"sign", "--input-file", message, "--output-file", signature}, keyArgs...)...)
	assert.NotContains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "Signature saved at")

	content, err := os.ReadFile(signature)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(string(content)))

	logs = execute(t, append([]string{"verify", "--input-file", message, "--signature-file", signature}, keyArgs...)...)
	assert.Contains(t, logs, "Signature is valid")
	assert.NotContains(t, logs, "Signature is invalid")

	forged := testutil.WriteTempFile(t, "forged_signature.txt", "1234")
	logs = execute(t, append([]string{"verify", "--input-file", message, "--signature-file", forged}, keyArgs...)...)
	assert.Contains(t, logs, "Signature is invalid")
	assert.NotContains(t, logs, "Signature is valid")

	tampered := testutil.WriteTempFile(t, "tampered.txt", "sign us")
	logs = execute(t, append([]string{"verify", "--input-file", tampered, "--signature-file", signature}, keyArgs...)...)
	assert.Contains(t, logs, "Signature is invalid")
}

func TestDeriveKeysCommand(t *testing.T) {
	logs := execute(t, "derive-keys", "--mode", "bound", "--n", "3233")
	assert.NotContains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "p=1613 q=2 n=3226 phi=1612")

	logs = execute(t, "derive-keys", "--mode", "factors", "--p", "61", "--q", "53", "--e", "17")
	assert.Contains(t, logs, "private key (n=3233, d=2753)")

	logs = execute(t, "derive-keys", "--mode", "factors", "--p", "4", "--q", "7")
	assert.Contains(t, logs, "level=ERROR")
	assert.Contains(t, logs, keys.ErrInvalidFactors.Error())
	assert.NotContains(t, logs, "private key")

	logs = execute(t, "derive-keys", "--mode", "bound", "--n", "9")
	assert.Contains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "invalid key settings")
}

func TestReadKeySettings(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addKeyFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--mode", "factors", "--p", "61", "--q", "53", "--e", "17"}))

	settings, err := readKeySettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "factors", settings.Mode)
	assert.Equal(t, int64(61), settings.P)
	assert.Equal(t, int64(53), settings.Q)
	assert.Equal(t, int64(17), settings.E)
	assert.Zero(t, settings.N)
}

func TestReadLoggerSettingsFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogType, "")
	t.Setenv(EnvLogFilePath, "")

	settings, err := ReadLoggerSettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "console", settings.LogType)

	t.Setenv(EnvLogType, "file")
	_, err = ReadLoggerSettingsFromEnv()
	assert.Error(t, err)

	t.Setenv(EnvLogLevel, "verbose")
	t.Setenv(EnvLogType, "console")
	_, err = ReadLoggerSettingsFromEnv()
	assert.Error(t, err)
}
