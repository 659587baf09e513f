// Package numtheory provides the number-theoretic primitives behind textbook RSA:
// deterministic primality testing, prime enumeration, gcd and modular exponentiation.
//
// All functions are pure and operate on math/big values so that no intermediate
// product overflows, regardless of the modulus size.
package numtheory
