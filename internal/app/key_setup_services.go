package app

import (
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
)

// Session is one key setup. Every operation of an invocation runs against the same
// Keys; a new setup produces a new Session rather than mutating an existing one.
type Session struct {
	ID        uuid.UUID
	Keys      *keys.KeyMaterial
	CreatedAt time.Time
}

// KeySetupService derives key material from KeySettings.
type KeySetupService struct {
	logger logger.Logger
}

// NewKeySetupService creates a new KeySetupService instance
func NewKeySetupService(logger logger.Logger) (*KeySetupService, error) {
	return &KeySetupService{
		logger: logger,
	}, nil
}

// Setup resolves the prime pair for the configured mode, selects or validates the
// public exponent and derives the private exponent.
func (s *KeySetupService) Setup(settings *config.KeySettings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key settings: %w", err)
	}

	factors, err := s.resolveFactors(settings)
	if err != nil {
		return nil, err
	}

	e, err := s.resolvePublicExponent(factors, settings.E)
	if err != nil {
		return nil, err
	}

	km, err := keys.NewKeyMaterial(factors, e)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key material: %w", err)
	}

	session := &Session{
		ID:        uuid.New(),
		Keys:      km,
		CreatedAt: time.Now().UTC(),
	}

	s.logger.Info(fmt.Sprintf("Derived key material for session %s: n=%s e=%s", session.ID, km.N(), km.E()))
	s.logger.Debug(spew.Sdump(session))
	return session, nil
}

func (s *KeySetupService) resolveFactors(settings *config.KeySettings) (keys.Factors, error) {
	var (
		factors keys.Factors
		err     error
	)

	switch settings.Mode {
	case config.KeyModeBound:
		factors, err = keys.DeriveFromBound(settings.N)
	case config.KeyModeModulus:
		factors, err = keys.FactorModulus(settings.N)
	case config.KeyModeFactors:
		factors, err = keys.DeriveFromFactors(big.NewInt(settings.P), big.NewInt(settings.Q))
	default:
		return keys.Factors{}, fmt.Errorf("unsupported key mode: %s", settings.Mode)
	}
	if err != nil {
		return keys.Factors{}, fmt.Errorf("failed to resolve prime factors: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Using primes p=%s q=%s (%s mode)", factors.P, factors.Q, settings.Mode))
	return factors, nil
}

func (s *KeySetupService) resolvePublicExponent(factors keys.Factors, manual int64) (*big.Int, error) {
	if manual == 0 {
		e := keys.ChoosePublicExponent(factors)
		s.logger.Info("Generated public exponent e=", e)
		return e, nil
	}

	e := big.NewInt(manual)
	if err := keys.ValidatePublicExponent(e, factors.Totient()); err != nil {
		return nil, err
	}
	return e, nil
}
