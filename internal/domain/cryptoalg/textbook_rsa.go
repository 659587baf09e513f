package cryptoalg

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// TextbookRSAProcessor handles unpadded RSA over individual code points.
// Identical characters always encrypt to identical ciphertext values: there is
// no padding, no chaining and no randomization.
type TextbookRSAProcessor interface {
	// Encrypt raises every code point of plainText to e modulo n, preserving order and length.
	// It fails as a whole if any code point is >= n.
	Encrypt(plainText string, publicKey keys.PublicKey) ([]*big.Int, error)

	// Decrypt raises every ciphertext value to d modulo n and decodes the result as text.
	Decrypt(cipherText []*big.Int, privateKey keys.PrivateKey) (string, error)

	// Sign signs the additive digest of message with the private exponent.
	Sign(message string, privateKey keys.PrivateKey) (*big.Int, error)

	// Verify recomputes the digest of message and compares it with signature^e mod n.
	Verify(message string, signature *big.Int, publicKey keys.PublicKey) (bool, error)

	// SaveCipherTextToFile writes ciphertext in the given format (CipherFormatIntegers or CipherFormatText).
	SaveCipherTextToFile(cipherText []*big.Int, filename, format string) error

	// ReadCipherTextFromFile reads ciphertext written by SaveCipherTextToFile.
	ReadCipherTextFromFile(filename, format string) ([]*big.Int, error)

	// SaveSignatureToFile writes the signature as decimal text.
	SaveSignatureToFile(signature *big.Int, filename string) error

	// ReadSignatureFromFile reads a decimal signature.
	ReadSignatureFromFile(filename string) (*big.Int, error)
}
