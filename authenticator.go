package directory

import (
	"context"
	"reflect"
)

// Auther orchestrates credential verification, registration, and token
// issuance. It implements Authenticator.
type Auther struct {
	provider IdentityProvider
	registry AccountRegisterer
	tokens   TokenService
	logger   Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator. The signing key and TTL come
// from cfg once, here; the resulting token service is handed to every flow.
func NewAuthenticator(provider IdentityProvider, registry AccountRegisterer, cfg Config) *Auther {
	tokens := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenTTL(),
		cfg.GetIssuer(),
		cfg.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider: provider,
		registry: registry,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the default token service
func (s *Auther) WithTokenService(tokens TokenService) *Auther {
	if tokens != nil {
		s.tokens = tokens
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokens
}

// SignUp validates the payload, registers the account, and issues a token
// for the newly created credential. Validation failures never reach the
// store.
func (s *Auther) SignUp(ctx context.Context, input SignUpInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	identity, err := s.registry.RegisterAccount(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		s.logger.Error("SignUp register account error", "error", err)
		return "", err
	}

	return s.tokens.Generate(identity)
}

// Login verifies the email/password pair and issues a token for the stored
// credential's claims.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		s.logger.Error("Login verify identity error", "error", err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrUserNotFound
	}

	return s.tokens.Generate(identity)
}

// IdentityFromToken decodes a raw token into the identity it was issued
// for. Verification is a purely offline cryptographic check; no store
// lookup happens here.
func (s *Auther) IdentityFromToken(raw string) (Identity, error) {
	claims, err := s.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}

	return identityFromClaims(claims), nil
}
