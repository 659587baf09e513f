package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// EncryptCodePoint computes m^e mod n. m must satisfy 0 <= m < n.
func EncryptCodePoint(m *big.Int, publicKey keys.PublicKey) (*big.Int, error) {
	return encryptAt(0, m, publicKey)
}

// DecryptCodePoint computes c^d mod n.
func DecryptCodePoint(c *big.Int, privateKey keys.PrivateKey) *big.Int {
	return numtheory.ModPow(c, privateKey.D, privateKey.N)
}

// EncryptCodePoints encrypts each code point independently. The first code point
// that is out of range fails the whole call and no partial result is returned.
func EncryptCodePoints(codePoints []*big.Int, publicKey keys.PublicKey) ([]*big.Int, error) {
	out := make([]*big.Int, len(codePoints))
	for i, m := range codePoints {
		c, err := encryptAt(i, m, publicKey)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// DecryptCodePoints decrypts each ciphertext value independently.
func DecryptCodePoints(cipherText []*big.Int, privateKey keys.PrivateKey) []*big.Int {
	out := make([]*big.Int, len(cipherText))
	for i, c := range cipherText {
		out[i] = DecryptCodePoint(c, privateKey)
	}
	return out
}

func encryptAt(position int, m *big.Int, publicKey keys.PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(publicKey.N) >= 0 {
		return nil, &CodePointOutOfRangeError{
			Position:  position,
			CodePoint: new(big.Int).Set(m),
			Modulus:   new(big.Int).Set(publicKey.N),
		}
	}
	return numtheory.ModPow(m, publicKey.E, publicKey.N), nil
}
