package storage

import (
	"context"

	"pixvault/internal/domain/dto"
)

// Signer resolves a storage key to a pair of time-limited access URLs.
type Signer interface {
	ResolveAccessURLs(ctx context.Context, storageKey string) (dto.AccessURLs, error)
}
