package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MinataFumi123/college-tour-website/models"
)

type MongoCourseStore struct {
	collection *mongo.Collection
}

func NewMongoCourseStore(database *mongo.Database) *MongoCourseStore {
	return &MongoCourseStore{collection: database.Collection("courses")}
}

func (s *MongoCourseStore) ListByTour(ctx context.Context, tourID string) ([]models.Course, error) {
	oid, err := objectID(tourID)
	if err != nil {
		return nil, err
	}

	cursor, err := s.collection.Find(ctx, bson.M{"college": oid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *MongoCourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var course models.Course
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *MongoCourseStore) Create(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, course)
	return err
}

func (s *MongoCourseStore) Delete(ctx context.Context, id string) error {
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
