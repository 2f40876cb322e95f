package usecase

import (
	"context"
	"errors"
	"net/http"

	"pixvault/internal/domain/dto"
	"pixvault/internal/domain/repository/database"
	"pixvault/internal/domain/repository/storage"
	"pixvault/pkg/logger"
)

// Getter implements the ImageGetter abstraction for single-record views.
type Getter struct {
	retriever database.Retriever
	signer    storage.Signer
}

func NewGetter(retriever database.Retriever, signer storage.Signer) *Getter {
	return &Getter{
		retriever: retriever,
		signer:    signer,
	}
}

func (g *Getter) Get(ctx context.Context, id string) (*dto.GalleryImage, int, error) {
	image, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidID):
			return nil, http.StatusBadRequest, err
		case errors.Is(err, database.ErrNotFound):
			return nil, http.StatusNotFound, err
		default:
			return nil, http.StatusInternalServerError, errors.New("failed to retrieve image")
		}
	}

	urls, err := g.signer.ResolveAccessURLs(ctx, image.StorageKey)
	if err != nil {
		logger.Warn("url resolution failed", "key", image.StorageKey, "err", err)
		urls = dto.AccessURLs{}
	}

	item := toGalleryImage(image, urls)

	return &item, http.StatusOK, nil
}
