package database

import (
	"context"
	"errors"

	"pixvault/internal/domain/model"
)

var (
	// ErrInvalidID marks a record identifier that cannot be parsed.
	ErrInvalidID = errors.New("invalid image id")
	// ErrNotFound marks an absent or soft-deleted record.
	ErrNotFound = errors.New("image not found")
)

// Filter holds the optional gallery predicates. Zero values mean
// "not filtered on"; all set fields combine with AND. Soft-deleted
// records are excluded unconditionally.
type Filter struct {
	Visible      *bool
	TagName      string
	TagNames     []string // record must carry all of them
	Author       string   // case-insensitive substring
	AuthorID     string
	OriginWorkID *int64
}

// Querier defines the interface for querying gallery images.
type Querier interface {
	Query(ctx context.Context, filter Filter, page, pageSize int) ([]model.Image, int64, error)
}

// Retriever defines the interface for fetching a single gallery image.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Image, error)
}
