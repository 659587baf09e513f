//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *KeySettings
		expectedError bool
	}{
		{
			name:          "valid bound mode",
			settings:      &KeySettings{Mode: KeyModeBound, N: 3233},
			expectedError: false,
		},
		{
			name:          "bound mode at minimum",
			settings:      &KeySettings{Mode: KeyModeBound, N: MinModulusBound},
			expectedError: false,
		},
		{
			name:          "bound mode below minimum",
			settings:      &KeySettings{Mode: KeyModeBound, N: 9},
			expectedError: true,
		},
		{
			name:          "valid factors mode with manual exponent",
			settings:      &KeySettings{Mode: KeyModeFactors, P: 61, Q: 53, E: 17},
			expectedError: false,
		},
		{
			name:          "factors mode missing q",
			settings:      &KeySettings{Mode: KeyModeFactors, P: 61},
			expectedError: true,
		},
		{
			name:          "valid modulus mode",
			settings:      &KeySettings{Mode: KeyModeModulus, N: 3233},
			expectedError: false,
		},
		{
			name:          "modulus mode missing n",
			settings:      &KeySettings{Mode: KeyModeModulus},
			expectedError: true,
		},
		{
			name:          "missing mode",
			settings:      &KeySettings{N: 3233},
			expectedError: true,
		},
		{
			name:          "unknown mode",
			settings:      &KeySettings{Mode: "random", N: 3233},
			expectedError: true,
		},
		{
			name:          "negative exponent",
			settings:      &KeySettings{Mode: KeyModeBound, N: 3233, E: -3},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}

func TestKeySettingsValidation_ReportsField(t *testing.T) {
	err := (&KeySettings{Mode: "random"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Mode, Tag: oneof")
}
