package testutil

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/stretchr/testify/require"
)

// TextbookKeyMaterial returns the classic worked example: p=61, q=53, e=17 (n=3233, d=2753).
func TextbookKeyMaterial(t *testing.T) *keys.KeyMaterial {
	t.Helper()
	return NewTestKeyMaterial(t, 61, 53, 17)
}

// NewTestKeyMaterial builds key material from small primes. e == 0 picks the exponent automatically.
func NewTestKeyMaterial(t *testing.T, p, q, e int64) *keys.KeyMaterial {
	t.Helper()

	f, err := keys.DeriveFromFactors(big.NewInt(p), big.NewInt(q))
	require.NoError(t, err)

	exponent := big.NewInt(e)
	if e == 0 {
		exponent = keys.ChoosePublicExponent(f)
	}

	km, err := keys.NewKeyMaterial(f, exponent)
	require.NoError(t, err)
	return km
}
