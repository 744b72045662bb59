// Package auth implements verification of identity tokens issued by the
// external identity provider.
package auth

import (
	"context"
	"log/slog"

	"hbb/config"
	"hbb/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// identityClaims are the provider claims the service consumes.
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// jwtVerifier implements service.IdentityVerifier for HMAC-signed provider
// session tokens.
type jwtVerifier struct {
	issuer   string
	audience string
	secret   []byte
	logger   *slog.Logger
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity verifier requires identity.secret to be configured")
	}

	return &jwtVerifier{
		issuer:   cfg.Identity.Issuer,
		audience: cfg.Identity.Audience,
		secret:   []byte(cfg.Identity.Secret),
		logger:   logger,
	}, nil
}

// Verify validates the token's signature, issuer, audience and expiry, and
// extracts the principal described by its claims.
func (v *jwtVerifier) Verify(_ context.Context, tokenString string) (*service.Principal, error) {
	claims := &identityClaims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid identity token")
	}
	if !token.Valid {
		return nil, errors.New("invalid identity token")
	}

	if claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}

	v.logger.Debug("identity token verified", slog.String("subject", claims.Subject))

	return &service.Principal{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
