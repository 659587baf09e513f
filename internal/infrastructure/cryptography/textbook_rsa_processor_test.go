//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTextbookRSAProcessor(t *testing.T) cryptoalg.TextbookRSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewTextbookRSAProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestTextbookRSAProcessor(t *testing.T) {
	processor := setupTextbookRSAProcessor(t)
	km := testutil.TextbookKeyMaterial(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		plainText := "This is a secret message"
		encrypted, err := processor.Encrypt(plainText, km.PublicKey())
		require.NoError(t, err)
		assert.Len(t, encrypted, len(plainText))

		decrypted, err := processor.Decrypt(encrypted, km.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptOutOfRange", func(t *testing.T) {
		small := testutil.NewTestKeyMaterial(t, 3, 2, 0)

		encrypted, err := processor.Encrypt("d", small.PublicKey())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCodePointOutOfRange)
		assert.Nil(t, encrypted)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		encrypted, err := processor.Encrypt("hello", km.PublicKey())
		require.NoError(t, err)

		wrong := testutil.NewTestKeyMaterial(t, 101, 103, 0)
		// Every value below n=10403 is a valid rune, so the wrong key yields garbage, not an error.
		decrypted, err := processor.Decrypt(encrypted, wrong.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, string([]rune{4742, 6464, 5668, 5668, 1057}), decrypted)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := processor.Encrypt("hello", keys.PublicKey{})
		assert.Error(t, err)
		_, err = processor.Decrypt(nil, keys.PrivateKey{})
		assert.Error(t, err)
		_, err = processor.Sign("hello", keys.PrivateKey{})
		assert.Error(t, err)
		_, err = processor.Verify("hello", big.NewInt(1), keys.PublicKey{})
		assert.Error(t, err)
		_, err = processor.Verify("hello", nil, km.PublicKey())
		assert.Error(t, err)
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		for _, n := range []int64{0, -3233} {
			_, err := processor.Encrypt("hello", keys.PublicKey{N: big.NewInt(n), E: big.NewInt(17)})
			assert.Error(t, err, "n=%d", n)
			_, err = processor.Decrypt([]*big.Int{big.NewInt(1)}, keys.PrivateKey{N: big.NewInt(n), D: big.NewInt(2753)})
			assert.Error(t, err, "n=%d", n)
			_, err = processor.Sign("hello", keys.PrivateKey{N: big.NewInt(n), D: big.NewInt(2753)})
			assert.Error(t, err, "n=%d", n)
			_, err = processor.Verify("hello", big.NewInt(1), keys.PublicKey{N: big.NewInt(n), E: big.NewInt(17)})
			assert.Error(t, err, "n=%d", n)
		}
	})

	t.Run("SignAndVerify", func(t *testing.T) {
		data := "This is a test message"
		signature, err := processor.Sign(data, km.PrivateKey())
		require.NoError(t, err)
		require.NotNil(t, signature)

		valid, err := processor.Verify(data, signature, km.PublicKey())
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = processor.Verify("This is a tampered message", signature, km.PublicKey())
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("SaveAndReadCipherText", func(t *testing.T) {
		encrypted, err := processor.Encrypt("hello", km.PublicKey())
		require.NoError(t, err)

		for _, format := range []string{cryptoalg.CipherFormatIntegers, cryptoalg.CipherFormatText} {
			path := filepath.Join(t.TempDir(), "message_encrypted.txt")
			require.NoError(t, processor.SaveCipherTextToFile(encrypted, path, format))

			read, err := processor.ReadCipherTextFromFile(path, format)
			require.NoError(t, err)

			decrypted, err := processor.Decrypt(read, km.PrivateKey())
			require.NoError(t, err)
			assert.Equal(t, "hello", decrypted, "format %s", format)
		}
	})

	t.Run("SaveCipherTextInvalidPath", func(t *testing.T) {
		err := processor.SaveCipherTextToFile([]*big.Int{big.NewInt(1)}, "/invalid/path/cipher.txt", cryptoalg.CipherFormatIntegers)
		assert.Error(t, err)
	})

	t.Run("ReadCipherTextMissingFile", func(t *testing.T) {
		_, err := processor.ReadCipherTextFromFile(filepath.Join(t.TempDir(), "missing.txt"), cryptoalg.CipherFormatIntegers)
		assert.Error(t, err)
	})

	t.Run("SaveAndReadSignature", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signature.txt")
		require.NoError(t, processor.SaveSignatureToFile(big.NewInt(534), path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "534", string(content))

		signature, err := processor.ReadSignatureFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(534), signature.Int64())
	})

	t.Run("ReadSignatureTrimsWhitespace", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "signature.txt", " 534\n")

		signature, err := processor.ReadSignatureFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(534), signature.Int64())
	})

	t.Run("ReadSignatureMalformed", func(t *testing.T) {
		for _, content := range []string{"", "abc", "-5", "12 34"} {
			path := testutil.WriteTempFile(t, "signature.txt", content)
			_, err := processor.ReadSignatureFromFile(path)
			assert.Error(t, err, "content %q", content)
		}
	})

	t.Run("SaveSignatureNil", func(t *testing.T) {
		assert.Error(t, processor.SaveSignatureToFile(nil, filepath.Join(t.TempDir(), "signature.txt")))
	})
}
