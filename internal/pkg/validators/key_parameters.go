// Package validators provides custom go-playground validator functions.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// MinModulusBound is the smallest n accepted when p and q are searched below a bound.
const MinModulusBound = 10

// minSemiprime is the smallest product of two distinct primes (2*3).
const minSemiprime = 6

// ModulusValidation validates n based on the key setup mode (bound, modulus or factors).
func ModulusValidation(fl validator.FieldLevel) bool {
	mode := fl.Parent().FieldByName("Mode").String()
	n := fl.Field().Int()

	switch mode {
	case "bound":
		return n >= MinModulusBound
	case "modulus":
		return n >= minSemiprime
	case "factors":
		return n == 0
	default:
		return false
	}
}

// FactorValidation validates p and q based on the key setup mode. Only the factors
// mode takes them, and a prime is at least 2. Primality itself is checked by key derivation.
func FactorValidation(fl validator.FieldLevel) bool {
	mode := fl.Parent().FieldByName("Mode").String()
	v := fl.Field().Int()

	if mode == "factors" {
		return v >= 2
	}
	return v == 0
}
