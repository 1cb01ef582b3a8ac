package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MinataFumi123/college-tour-website/models"
)

type MongoEventStore struct {
	collection *mongo.Collection
}

func NewMongoEventStore(database *mongo.Database) *MongoEventStore {
	return &MongoEventStore{collection: database.Collection("events")}
}

func (s *MongoEventStore) ListByTour(ctx context.Context, tourID string) ([]models.Event, error) {
	oid, err := objectID(tourID)
	if err != nil {
		return nil, err
	}

	cursor, err := s.collection.Find(ctx, bson.M{"college": oid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *MongoEventStore) FindByID(ctx context.Context, id string) (*models.Event, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var event models.Event
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *MongoEventStore) Create(ctx context.Context, event *models.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, event)
	return err
}

func (s *MongoEventStore) Delete(ctx context.Context, id string) error {
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
