package auth

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// SecretPolicy selects how the Secret header is treated for an operation.
type SecretPolicy int

const (
	// SecretIgnored skips the header entirely (deletes).
	SecretIgnored SecretPolicy = iota
	// SecretRequired demands a present, well-formed header (reads).
	SecretRequired
	// SecretForWrite additionally enforces the minimum length on every value.
	SecretForWrite
)

// Credentials are the raw header values of one request.
type Credentials struct {
	Authorization        string
	ServiceAuthorization string
	Secret               string
}

// TokenValidator turns an opaque token into the stable subject it was issued for.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	MinSecretLength int
	// AllowedServices restricts accepted service names. Empty accepts any.
	AllowedServices []string
}

// Resolver derives the request owner from its credentials.
type Resolver struct {
	users    TokenValidator
	services TokenValidator
	cfg      ResolverConfig
}

// NewResolver creates a Resolver over the user and service token validators.
func NewResolver(users, services TokenValidator, cfg ResolverConfig) *Resolver {
	return &Resolver{users: users, services: services, cfg: cfg}
}

// Authenticate resolves (userID, service) from creds. The secret header is
// checked first so malformed input is reported as a validation error even
// when the tokens are also wrong.
func (r *Resolver) Authenticate(_ context.Context, creds Credentials, policy SecretPolicy) (domain.UserAndService, error) {
	var (
		secrets    domain.Secrets
		hasSecrets bool
	)

	switch policy {
	case SecretRequired, SecretForWrite:
		minLength := 0
		if policy == SecretForWrite {
			minLength = r.cfg.MinSecretLength
		}
		s, err := ParseSecrets(creds.Secret, minLength)
		if err != nil {
			return domain.UserAndService{}, err
		}
		secrets, hasSecrets = s, true
	}

	userID, err := resolveToken(r.users, creds.Authorization)
	if err != nil {
		return domain.UserAndService{}, fmt.Errorf("%w: user token: %v", domain.ErrUnauthorized, err)
	}

	service, err := resolveToken(r.services, creds.ServiceAuthorization)
	if err != nil {
		return domain.UserAndService{}, fmt.Errorf("%w: service token: %v", domain.ErrUnauthorized, err)
	}

	if len(r.cfg.AllowedServices) > 0 && !slices.Contains(r.cfg.AllowedServices, service) {
		return domain.UserAndService{}, fmt.Errorf("%w: service %q is not allowed", domain.ErrUnauthorized, service)
	}

	caller := domain.UserAndService{UserID: userID, Service: service}
	if hasSecrets {
		caller = caller.WithSecrets(secrets)
	}
	return caller, nil
}

func resolveToken(v TokenValidator, header string) (string, error) {
	token := stripBearer(header)
	if token == "" {
		return "", fmt.Errorf("missing")
	}
	return v.Validate(token)
}

// stripBearer removes an optional case-insensitive "Bearer" scheme.
func stripBearer(header string) string {
	fields := strings.Fields(header)
	if len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}
