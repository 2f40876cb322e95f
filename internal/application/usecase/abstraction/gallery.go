package abstraction

import (
	"context"

	"pixvault/internal/domain/dto"
)

// GalleryLister turns raw listing parameters into a paginated page of
// image records with resolved access URLs.
type GalleryLister interface {
	List(ctx context.Context, params dto.GalleryParams) (*dto.GalleryPage, int, error)
}

// ImageGetter resolves a single image record with its access URLs.
type ImageGetter interface {
	Get(ctx context.Context, id string) (*dto.GalleryImage, int, error)
}

// URLResolver produces the signed URL pair for one storage key.
type URLResolver interface {
	Resolve(ctx context.Context, fileName string) (dto.AccessURLs, int, error)
}
