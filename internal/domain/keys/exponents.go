package keys

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// ChoosePublicExponent returns the smallest e >= 2 coprime with phi(n).
func ChoosePublicExponent(f Factors) *big.Int {
	phi := f.Totient()
	e := big.NewInt(2)
	for !numtheory.Coprime(e, phi) {
		e.Add(e, one)
	}
	return e
}

// ValidatePublicExponent checks a manually supplied e: 1 < e < phi and gcd(e, phi) == 1.
func ValidatePublicExponent(e, phi *big.Int) error {
	if e == nil || e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return fmt.Errorf("%w: e must satisfy 1 < e < %s", ErrInvalidPublicExponent, phi)
	}
	if !numtheory.Coprime(e, phi) {
		return fmt.Errorf("%w: gcd(%s, %s) != 1", ErrInvalidPublicExponent, e, phi)
	}
	return nil
}

// DerivePrivateExponent returns d in [0, phi) with d*e = 1 (mod phi).
func DerivePrivateExponent(e, phi *big.Int) (*big.Int, error) {
	if e == nil || phi == nil || phi.Sign() <= 0 {
		return nil, fmt.Errorf("%w: exponent and positive totient required", ErrPrivateExponentUndefined)
	}

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, fmt.Errorf("%w: %s has no inverse modulo %s", ErrPrivateExponentUndefined, e, phi)
	}
	return d, nil
}
