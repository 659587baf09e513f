package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// Digest returns the square of the sum of the message's code points.
//
// This is not a cryptographic hash: any permutation of the same characters,
// or any other message with the same code point sum, has the same digest.
func Digest(message string) *big.Int {
	sum := new(big.Int)
	for _, r := range message {
		sum.Add(sum, big.NewInt(int64(r)))
	}
	return sum.Mul(sum, sum)
}

// Sign computes (Digest(message) mod n)^d mod n.
func Sign(message string, privateKey keys.PrivateKey) *big.Int {
	h := new(big.Int).Mod(Digest(message), privateKey.N)
	return numtheory.ModPow(h, privateKey.D, privateKey.N)
}

// Verify reports whether signature^e mod n equals Digest(message) mod n.
func Verify(message string, signature *big.Int, publicKey keys.PublicKey) bool {
	h1 := new(big.Int).Mod(Digest(message), publicKey.N)
	h2 := numtheory.ModPow(signature, publicKey.E, publicKey.N)
	return h1.Cmp(h2) == 0
}
