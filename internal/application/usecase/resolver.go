package usecase

import (
	"context"
	"errors"
	"net/http"

	"pixvault/internal/domain/dto"
	"pixvault/internal/domain/repository/storage"
)

// Resolver implements the URLResolver abstraction for direct URL lookups.
type Resolver struct {
	signer storage.Signer
}

func NewResolver(signer storage.Signer) *Resolver {
	return &Resolver{signer: signer}
}

func (r *Resolver) Resolve(ctx context.Context, fileName string) (dto.AccessURLs, int, error) {
	if fileName == "" {
		return dto.AccessURLs{}, http.StatusBadRequest, errors.New("missing fileName parameter")
	}

	urls, err := r.signer.ResolveAccessURLs(ctx, fileName)
	if err != nil {
		return dto.AccessURLs{}, http.StatusInternalServerError, errors.New("failed to resolve image url")
	}

	return urls, http.StatusOK, nil
}
