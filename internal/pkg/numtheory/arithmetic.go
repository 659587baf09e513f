package numtheory

import "math/big"

// PrimesBelow returns every prime strictly less than bound, in ascending order.
//
// Each candidate goes through IsPrime, so the cost is linear in bound times the
// cost of one primality test. This is fine for the small moduli a textbook RSA
// session uses and does not scale to cryptographic sizes.
func PrimesBelow(bound int64) []int64 {
	var primes []int64
	for i := int64(2); i < bound; i++ {
		if IsPrimeInt64(i) {
			primes = append(primes, i)
		}
	}
	return primes
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	return new(big.Int).GCD(nil, nil, x, y)
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ModPow computes base^exp mod m by repeated squaring.
// m must be positive and exp non-negative.
func ModPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}
