// Package auth gates administrative routes behind a Google sign-in restricted
// to the organization's email domain.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"gyccsite/internal/config"
)

var (
	// ErrUnauthorized means no valid credential was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the credential is valid but belongs to another domain.
	ErrForbidden = errors.New("forbidden")
)

// Identity is the verified caller.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// TokenVerifier turns a raw bearer token into an Identity.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// Gate authenticates requests and enforces the allowed email domain.
type Gate struct {
	verifier TokenVerifier
	domain   string
}

// NewGate creates a Gate. An empty domain admits any verified email.
func NewGate(v TokenVerifier, domain string) *Gate {
	return &Gate{verifier: v, domain: strings.ToLower(strings.TrimPrefix(domain, "@"))}
}

// Authenticate checks an Authorization header value of the form "Bearer <token>".
func (g *Gate) Authenticate(ctx context.Context, header string) (*Identity, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	id, err := g.verifier.Verify(ctx, strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if g.domain != "" && !strings.HasSuffix(strings.ToLower(id.Email), "@"+g.domain) {
		return nil, ErrForbidden
	}
	return id, nil
}

// OIDCVerifier verifies Google ID tokens against the issuer's published keys.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer and builds a verifier for cfg.GoogleClientID.
func NewOIDCVerifier(ctx context.Context, cfg config.AuthConfig) (*OIDCVerifier, error) {
	if cfg.GoogleClientID == "" {
		return nil, errors.New("google client id is required")
	}
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc provider: %w", err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID})}, nil
}

// Verify checks signature, issuer, audience and expiry, and requires a verified email.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	tok, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := tok.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, errors.New("email not verified")
	}
	return &Identity{Subject: tok.Subject, Email: claims.Email, Name: claims.Name}, nil
}
