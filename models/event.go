package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        string             `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	// Stored under "college" so documents written by the old API keep working.
	TourID primitive.ObjectID `bson:"college" json:"tourId"`
}
