// Package cryptoalg defines the contracts for textbook RSA operations: per code point
// encryption and decryption, additive-digest signing and verification, and the
// serialization of the resulting artifacts.
package cryptoalg
