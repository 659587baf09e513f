// Package keys derives textbook RSA key material: the prime pair, the modulus,
// the totient and the public/private exponent pair.
package keys
