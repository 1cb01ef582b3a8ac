package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	// Stored under "college" so documents written by the old API keep working.
	TourID primitive.ObjectID `bson:"college" json:"tourId"`
}
