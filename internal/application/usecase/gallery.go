package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"pixvault/internal/domain/dto"
	"pixvault/internal/domain/model"
	"pixvault/internal/domain/repository/database"
	"pixvault/internal/domain/repository/storage"
	"pixvault/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// Gallery implements the GalleryLister abstraction: normalize the filter,
// fetch one page, resolve access URLs for every record concurrently.
type Gallery struct {
	querier database.Querier
	signer  storage.Signer
}

func NewGallery(querier database.Querier, signer storage.Signer) *Gallery {
	return &Gallery{
		querier: querier,
		signer:  signer,
	}
}

func (g *Gallery) List(ctx context.Context, params dto.GalleryParams) (*dto.GalleryPage, int, error) {
	filter, page, limit, err := normalizeParams(params)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	images, total, err := g.querier.Query(ctx, filter, page, limit)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("failed to query gallery")
	}

	items := resolveAccessURLs(ctx, g.signer, images)
	if ctx.Err() != nil {
		return nil, http.StatusInternalServerError, errors.New("request cancelled")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.GalleryPage{
		Data: items,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, http.StatusOK, nil
}

// normalizeParams coerces the raw parameters into a typed filter. Absent
// or non-numeric page/limit fall back to defaults; a numeric limit below
// one is rejected, a numeric page below one clamps to the first page.
func normalizeParams(params dto.GalleryParams) (database.Filter, int, int, error) {
	page := defaultPage
	if p, err := strconv.Atoi(params.Page); err == nil {
		page = p
		if page < 1 {
			page = 1
		}
	}

	limit := defaultLimit
	if l, err := strconv.Atoi(params.Limit); err == nil {
		if l < 1 {
			return database.Filter{}, 0, 0, errors.New("limit must be a positive integer")
		}
		limit = l
	}

	filter := database.Filter{
		Author:   params.Author,
		AuthorID: params.AuthorID,
	}

	if params.Visible != "" {
		visible, err := strconv.ParseBool(params.Visible)
		if err != nil {
			return database.Filter{}, 0, 0, errors.New("invalid 'visible' value")
		}
		filter.Visible = &visible
	}

	if params.IllustID != "" {
		illustID, err := strconv.ParseInt(params.IllustID, 10, 64)
		if err != nil {
			return database.Filter{}, 0, 0, errors.New("invalid 'illust_id' value")
		}
		filter.OriginWorkID = &illustID
	}

	// The parsed 'tags' set wins over the single 'tag' when both are
	// supplied; 'tag' applies only when 'tags' is absent or empty.
	tagNames := splitTagNames(params.Tags)
	if len(tagNames) > 0 {
		filter.TagNames = tagNames
	} else if params.Tag != "" {
		filter.TagName = params.Tag
	}

	return filter, page, limit, nil
}

func splitTagNames(tags string) []string {
	if tags == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(tags, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}

// resolveAccessURLs fans out one signer call per record and zips the
// results back by index, so output order always matches input order.
// A failed resolution degrades that record to empty URL strings instead
// of failing the page.
func resolveAccessURLs(ctx context.Context, signer storage.Signer, images []model.Image) []dto.GalleryImage {
	items := make([]dto.GalleryImage, len(images))

	var g errgroup.Group
	for i := range images {
		g.Go(func() error {
			urls, err := signer.ResolveAccessURLs(ctx, images[i].StorageKey)
			if err != nil {
				logger.Warn("url resolution failed", "key", images[i].StorageKey, "err", err)
				urls = dto.AccessURLs{}
			}
			items[i] = toGalleryImage(&images[i], urls)

			return nil
		})
	}
	_ = g.Wait()

	return items
}

func toGalleryImage(img *model.Image, urls dto.AccessURLs) dto.GalleryImage {
	tags := make([]dto.TagEntry, 0, len(img.Tags))
	for _, t := range img.Tags {
		tags = append(tags, dto.TagEntry{
			Name:        t.Name,
			Translation: t.Translation,
		})
	}

	return dto.GalleryImage{
		ID:           img.ID.Hex(),
		SourceAddr:   img.SourceAddr,
		Visible:      img.Visible,
		Author:       img.Author,
		AuthorID:     img.AuthorID,
		Title:        img.Title,
		CreatedAt:    img.CreatedAt,
		UpdatedAt:    img.UpdatedAt,
		OriginWorkID: img.OriginWorkID,
		Width:        img.Width,
		Height:       img.Height,
		Tags:         tags,
		DisplayURL:   urls.DisplayURL,
		DownloadURL:  urls.DownloadURL,
	}
}
