package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"pixvault/internal/domain/model"
	dbRepository "pixvault/internal/domain/repository/database"
	"pixvault/pkg/logger"
)

type GalleryStore struct {
	db *Database
}

func NewGalleryStore(db *Database) *GalleryStore {
	return &GalleryStore{db: db}
}

// Query returns one page of images matching the filter, newest first,
// together with the total match count over the whole filtered set.
func (s *GalleryStore) Query(ctx context.Context, filter dbRepository.Filter,
	page, pageSize int,
) ([]model.Image, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(ImageCollection)
	query := buildQuery(filter)

	skip := int64(page-1) * int64(pageSize)
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(pageSize))

	var images []model.Image
	var total int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := coll.Find(gCtx, query, findOpts)
		if err != nil {
			return err
		}
		defer cursor.Close(gCtx)

		return cursor.All(gCtx, &images)
	})
	g.Go(func() error {
		var err error
		total, err = coll.CountDocuments(gCtx, query)

		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("gallery query failed", "err", err)

		return nil, 0, err
	}

	return images, total, nil
}

// buildQuery translates the typed filter into a mongo predicate.
// Soft-deleted records are excluded from every query.
func buildQuery(filter dbRepository.Filter) bson.M {
	query := bson.M{"deleted": false}

	if filter.Visible != nil {
		query["visible"] = *filter.Visible
	}

	// The multi-tag predicate wins over the single-tag one when both
	// are set; each record must carry every requested tag name.
	if filter.TagName != "" {
		query["tags.name"] = filter.TagName
	}
	if len(filter.TagNames) > 0 {
		query["tags.name"] = bson.M{"$all": filter.TagNames}
	}

	if filter.Author != "" {
		query["author"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Author),
			Options: "i",
		}
	}

	if filter.AuthorID != "" {
		query["author_id"] = filter.AuthorID
	}

	if filter.OriginWorkID != nil {
		query["origin_work_id"] = *filter.OriginWorkID
	}

	return query
}
