// Package service defines domain-level interfaces for external collaborators
// such as the identity provider and the event feed.
package service

import "context"

// Principal is the identity context attached to an authenticated request by
// the external identity provider. The core never authenticates credentials
// itself; it trusts the verified token claims carried here.
type Principal struct {
	Subject string // Stable subject identifier, unique per authenticated human.
	Email   string // Optional email claim.
	Name    string // Optional display name claim.
}

// IdentityVerifier validates an identity token issued by the external
// provider and extracts the principal it describes.
type IdentityVerifier interface {
	// Verify checks the token's signature, issuer, audience and expiry.
	// It returns the embedded principal on success.
	Verify(ctx context.Context, token string) (*Principal, error)
}
