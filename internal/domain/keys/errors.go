package keys

import "errors"

var (
	// ErrInvalidFactors is returned when p or q is not prime, or p == q.
	ErrInvalidFactors = errors.New("invalid factors")

	// ErrNoFactorPairFound is returned when no prime pair satisfies a factor search.
	ErrNoFactorPairFound = errors.New("no valid factor pair found")

	// ErrInvalidPublicExponent is returned when e is outside (1, phi) or shares a factor with phi.
	ErrInvalidPublicExponent = errors.New("invalid public exponent")

	// ErrPrivateExponentUndefined is returned when e has no inverse modulo phi.
	ErrPrivateExponentUndefined = errors.New("private key computation failed")
)
