package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	logger logger.Logger
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor
func NewTextbookRSAProcessor(logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	return &textbookRSAProcessor{
		logger: logger,
	}, nil
}

var (
	errInvalidPublicKey  = errors.New("public key cannot be nil and needs a positive modulus")
	errInvalidPrivateKey = errors.New("private key cannot be nil and needs a positive modulus")
)

func usablePublicKey(k keys.PublicKey) bool {
	return k.N != nil && k.E != nil && k.N.Sign() > 0
}

func usablePrivateKey(k keys.PrivateKey) bool {
	return k.N != nil && k.D != nil && k.N.Sign() > 0
}

// Encrypt encrypts every code point of plainText with the public key.
func (r *textbookRSAProcessor) Encrypt(plainText string, publicKey keys.PublicKey) ([]*big.Int, error) {
	if !usablePublicKey(publicKey) {
		return nil, errInvalidPublicKey
	}

	cipherText, err := EncryptCodePoints(CodePoints(plainText), publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("Textbook RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts every ciphertext value with the private key and decodes the result.
func (r *textbookRSAProcessor) Decrypt(cipherText []*big.Int, privateKey keys.PrivateKey) (string, error) {
	if !usablePrivateKey(privateKey) {
		return "", errInvalidPrivateKey
	}

	plainText, err := StringFromCodePoints(DecryptCodePoints(cipherText, privateKey))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Info("Textbook RSA decryption succeeded")
	return plainText, nil
}

// Sign signs the additive digest of message.
func (r *textbookRSAProcessor) Sign(message string, privateKey keys.PrivateKey) (*big.Int, error) {
	if !usablePrivateKey(privateKey) {
		return nil, errInvalidPrivateKey
	}

	signature := Sign(message, privateKey)

	r.logger.Info("Textbook RSA signing succeeded")
	return signature, nil
}

// Verify checks signature against message. A mismatch is reported as false, not as an error.
func (r *textbookRSAProcessor) Verify(message string, signature *big.Int, publicKey keys.PublicKey) (bool, error) {
	if !usablePublicKey(publicKey) {
		return false, errInvalidPublicKey
	}
	if signature == nil {
		return false, errors.New("signature cannot be nil")
	}

	valid := Verify(message, signature, publicKey)
	if valid {
		r.logger.Info("Textbook RSA signature verified successfully")
	} else {
		r.logger.Warn("Textbook RSA signature does not match message digest")
	}
	return valid, nil
}

// SaveCipherTextToFile writes the ciphertext in the requested format.
func (r *textbookRSAProcessor) SaveCipherTextToFile(cipherText []*big.Int, filename, format string) error {
	data, err := encodeCipherText(cipherText, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(filename), data, 0600); err != nil {
		return fmt.Errorf("failed to write ciphertext file: %w", err)
	}

	r.logger.Info("Saved ciphertext ", filename)
	return nil
}

// ReadCipherTextFromFile reads ciphertext in the requested format.
func (r *textbookRSAProcessor) ReadCipherTextFromFile(filename, format string) ([]*big.Int, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("unable to read ciphertext file: %w", err)
	}

	cipherText, err := decodeCipherText(data, format)
	if err != nil {
		return nil, fmt.Errorf("unable to parse ciphertext file %s: %w", filename, err)
	}

	return cipherText, nil
}

// SaveSignatureToFile writes the signature as decimal text.
func (r *textbookRSAProcessor) SaveSignatureToFile(signature *big.Int, filename string) error {
	if signature == nil {
		return errors.New("signature cannot be nil")
	}

	if err := os.WriteFile(filepath.Clean(filename), []byte(signature.String()), 0600); err != nil {
		return fmt.Errorf("failed to write signature file: %w", err)
	}

	r.logger.Info("Saved signature ", filename)
	return nil
}

// ReadSignatureFromFile reads a decimal signature.
func (r *textbookRSAProcessor) ReadSignatureFromFile(filename string) (*big.Int, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("unable to read signature file: %w", err)
	}

	signature, err := parseNonNegative(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("unable to parse signature file %s: %w", filename, err)
	}

	return signature, nil
}
