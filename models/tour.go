package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults applied when a tour is created without the optional fields.
const (
	DefaultEstablished = "Unknown"
	DefaultStudents    = "Unknown"
	DefaultType        = "College"
	DefaultImage       = "https://via.placeholder.com/300"
)

// Tour is the primary domain entity: one college/institution profile.
type Tour struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	ShortName   string             `bson:"shortName,omitempty" json:"shortName,omitempty"`
	Description string             `bson:"description" json:"description"`
	Established string             `bson:"established" json:"established"`
	Students    string             `bson:"students" json:"students"`
	Type        string             `bson:"type" json:"type"`
	TourInfo    string             `bson:"tourInfo,omitempty" json:"tourInfo,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Location    []float64          `bson:"location" json:"location"` // [longitude, latitude]
	Address     string             `bson:"address" json:"address"`
	AdminEmail  string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
