package keys

import (
	"fmt"
	"math/big"
)

// PublicKey is the (n, e) half of a key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, d) half of a key pair.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyMaterial holds a fully derived key pair. Values are fixed at construction;
// a different p or q means building a new KeyMaterial.
type KeyMaterial struct {
	p, q   *big.Int
	n, phi *big.Int
	e, d   *big.Int
}

// NewKeyMaterial re-validates f and derives n, phi and d for the public exponent e.
func NewKeyMaterial(f Factors, e *big.Int) (*KeyMaterial, error) {
	factors, err := DeriveFromFactors(f.P, f.Q)
	if err != nil {
		return nil, err
	}

	phi := factors.Totient()
	if e == nil || e.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: e must be greater than 1", ErrInvalidPublicExponent)
	}
	// e >= phi only arises from automatic selection when phi == 2 (p=2, q=3).
	if e.Cmp(phi) >= 0 && e.Cmp(ChoosePublicExponent(factors)) != 0 {
		return nil, fmt.Errorf("%w: e must be less than %s", ErrInvalidPublicExponent, phi)
	}

	d, err := DerivePrivateExponent(e, phi)
	if err != nil {
		return nil, err
	}

	return &KeyMaterial{
		p:   factors.P,
		q:   factors.Q,
		n:   factors.Modulus(),
		phi: phi,
		e:   new(big.Int).Set(e),
		d:   d,
	}, nil
}

// P returns the first prime factor.
func (k *KeyMaterial) P() *big.Int { return new(big.Int).Set(k.p) }

// Q returns the second prime factor.
func (k *KeyMaterial) Q() *big.Int { return new(big.Int).Set(k.q) }

// N returns the modulus.
func (k *KeyMaterial) N() *big.Int { return new(big.Int).Set(k.n) }

// Phi returns Euler's totient of the modulus.
func (k *KeyMaterial) Phi() *big.Int { return new(big.Int).Set(k.phi) }

// E returns the public exponent.
func (k *KeyMaterial) E() *big.Int { return new(big.Int).Set(k.e) }

// D returns the private exponent.
func (k *KeyMaterial) D() *big.Int { return new(big.Int).Set(k.d) }

// PublicKey returns a copy of (n, e).
func (k *KeyMaterial) PublicKey() PublicKey {
	return PublicKey{N: k.N(), E: k.E()}
}

// PrivateKey returns a copy of (n, d).
func (k *KeyMaterial) PrivateKey() PrivateKey {
	return PrivateKey{N: k.N(), D: k.D()}
}

func (k *KeyMaterial) String() string {
	return fmt.Sprintf("p=%s q=%s n=%s phi=%s e=%s d=%s", k.p, k.q, k.n, k.phi, k.e, k.d)
}
