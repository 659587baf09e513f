package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Key setup modes
const (
	// KeyModeBound searches for primes p, q with p*q <= N.
	KeyModeBound = "bound"
	// KeyModeFactors takes p and q as given.
	KeyModeFactors = "factors"
	// KeyModeModulus factors N exactly into p*q.
	KeyModeModulus = "modulus"
)

// MinModulusBound is the smallest bound accepted in KeyModeBound.
const MinModulusBound = validators.MinModulusBound

// KeySettings holds the parameters a key pair is derived from.
// E == 0 selects the public exponent automatically.
type KeySettings struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=bound factors modulus"`
	N    int64  `mapstructure:"n" validate:"modulus"`
	P    int64  `mapstructure:"p" validate:"factor"`
	Q    int64  `mapstructure:"q" validate:"factor"`
	E    int64  `mapstructure:"e" validate:"gte=0"`
}

// Validate checks that exactly the fields used by the selected mode are set
func (s *KeySettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("modulus", validators.ModulusValidation); err != nil {
		return fmt.Errorf("failed to register modulus validation: %w", err)
	}
	if err := validate.RegisterValidation("factor", validators.FactorValidation); err != nil {
		return fmt.Errorf("failed to register factor validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for KeySettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
