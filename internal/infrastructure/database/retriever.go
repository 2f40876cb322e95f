package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pixvault/internal/domain/model"
	dbRepository "pixvault/internal/domain/repository/database"
)

type ImageRetriever struct {
	db *Database
}

func NewImageRetriever(db *Database) *ImageRetriever {
	return &ImageRetriever{db: db}
}

// GetByID fetches a single non-deleted image by its ObjectID hex.
// A soft-deleted record is reported the same way as an absent one.
func (r *ImageRetriever) GetByID(ctx context.Context, id string) (*model.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dbRepository.ErrInvalidID
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(ImageCollection)

	var image model.Image
	err = coll.FindOne(ctx, bson.M{"_id": oid, "deleted": false}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dbRepository.ErrNotFound
		}

		return nil, err
	}

	return &image, nil
}
