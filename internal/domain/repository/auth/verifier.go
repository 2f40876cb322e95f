package auth

import "context"

// Identity is the caller identity carried by a verified credential.
type Identity struct {
	UserID   int64
	Username string
	RoleID   int
}

// Verifier maps a bearer credential to an identity or rejects it.
// Credential issuance lives outside this system.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
