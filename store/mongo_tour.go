package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MinataFumi123/college-tour-website/models"
)

type MongoTourStore struct {
	collection *mongo.Collection
}

func NewMongoTourStore(database *mongo.Database) *MongoTourStore {
	return &MongoTourStore{collection: database.Collection("tours")}
}

func (s *MongoTourStore) List(ctx context.Context) ([]models.Tour, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (s *MongoTourStore) FindByID(ctx context.Context, id string) (*models.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var tour models.Tour
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&tour)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (s *MongoTourStore) Create(ctx context.Context, tour *models.Tour) error {
	if tour.ID.IsZero() {
		tour.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, tour)
	return err
}

// Replace swaps the whole document; last write wins.
func (s *MongoTourStore) Replace(ctx context.Context, id string, tour *models.Tour) (*models.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	tour.ID = oid

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var updated models.Tour
	err = s.collection.FindOneAndReplace(ctx, bson.M{"_id": oid}, tour, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MongoTourStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
