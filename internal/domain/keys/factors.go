package keys

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

var one = big.NewInt(1)

// Factors is a validated pair of distinct primes.
type Factors struct {
	P *big.Int
	Q *big.Int
}

// Modulus returns n = p*q.
func (f Factors) Modulus() *big.Int {
	return new(big.Int).Mul(f.P, f.Q)
}

// Totient returns phi(n) = (p-1)(q-1).
func (f Factors) Totient() *big.Int {
	p1 := new(big.Int).Sub(f.P, one)
	q1 := new(big.Int).Sub(f.Q, one)
	return p1.Mul(p1, q1)
}

// DeriveFromFactors validates an explicitly supplied prime pair.
func DeriveFromFactors(p, q *big.Int) (Factors, error) {
	if p == nil || q == nil {
		return Factors{}, fmt.Errorf("%w: p and q are required", ErrInvalidFactors)
	}
	if !numtheory.IsPrime(p) {
		return Factors{}, fmt.Errorf("%w: p=%s is not prime", ErrInvalidFactors, p)
	}
	if !numtheory.IsPrime(q) {
		return Factors{}, fmt.Errorf("%w: q=%s is not prime", ErrInvalidFactors, q)
	}
	if p.Cmp(q) == 0 {
		return Factors{}, fmt.Errorf("%w: p and q must be distinct, got %s twice", ErrInvalidFactors, p)
	}

	return Factors{P: new(big.Int).Set(p), Q: new(big.Int).Set(q)}, nil
}

// DeriveFromBound searches for distinct primes p, q below bound with p*q <= bound.
//
// Candidates for p are scanned from the largest prime downwards, each paired
// against q in ascending order, and the first hit wins. That maximizes p, not
// the product. Enumerating the primes costs O(bound) primality tests, so the
// bound has to stay small. Callers are expected to require bound >= 10.
func DeriveFromBound(bound int64) (Factors, error) {
	primes := numtheory.PrimesBelow(bound)

	for i := len(primes) - 1; i >= 0; i-- {
		p := primes[i]
		for _, q := range primes {
			// q <= bound/p is p*q <= bound without the overflow
			if p != q && q <= bound/p {
				return Factors{P: big.NewInt(p), Q: big.NewInt(q)}, nil
			}
		}
	}

	return Factors{}, fmt.Errorf("%w: no distinct primes p, q with p*q <= %d", ErrNoFactorPairFound, bound)
}

// FactorModulus finds distinct primes p < q with p*q == n exactly.
func FactorModulus(n int64) (Factors, error) {
	for p := int64(2); p <= n/p; p++ {
		if n%p != 0 || !numtheory.IsPrimeInt64(p) {
			continue
		}
		q := n / p
		if q != p && numtheory.IsPrimeInt64(q) {
			return Factors{P: big.NewInt(p), Q: big.NewInt(q)}, nil
		}
	}

	return Factors{}, fmt.Errorf("%w: %d is not a product of two distinct primes", ErrNoFactorPairFound, n)
}
