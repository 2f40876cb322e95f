package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ImageCollection = "images"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initImageCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initImageCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ImageCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"source_addr", "visible", "created_at", "updated_at", "storage_key", "origin_work_id", "deleted"},
			"properties": bson.M{
				"source_addr": bson.M{
					"bsonType":    "string",
					"description": "origin identifier plus page number, e.g. 12345_p0.png",
				},
				"visible":        bson.M{"bsonType": "bool"},
				"author":         bson.M{"bsonType": []string{"string", "null"}},
				"author_id":      bson.M{"bsonType": []string{"string", "null"}},
				"title":          bson.M{"bsonType": []string{"string", "null"}},
				"created_at":     bson.M{"bsonType": "date"},
				"updated_at":     bson.M{"bsonType": "date"},
				"storage_key":    bson.M{"bsonType": "string"},
				"origin_work_id": bson.M{"bsonType": []string{"int", "long"}},
				"deleted":        bson.M{"bsonType": "bool"},
				"width":          bson.M{"bsonType": []string{"int", "null"}},
				"height":         bson.M{"bsonType": []string{"int", "null"}},
				"tags": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"name"},
						"properties": bson.M{
							"name":        bson.M{"bsonType": "string"},
							"translation": bson.M{"bsonType": []string{"string", "null"}},
							"visible":     bson.M{"bsonType": []string{"bool", "null"}},
						},
					},
				},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ImageCollection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(ImageCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "source_addr", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags.name", Value: 1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "origin_work_id", Value: 1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
