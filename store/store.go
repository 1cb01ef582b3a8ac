// Package store holds the persistence interfaces and their MongoDB and
// in-memory implementations. Handlers depend only on the interfaces.
package store

import (
	"context"
	"errors"

	"github.com/MinataFumi123/college-tour-website/models"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
	ErrDuplicate = errors.New("duplicate key")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type TourStore interface {
	List(ctx context.Context) ([]models.Tour, error)
	FindByID(ctx context.Context, id string) (*models.Tour, error)
	Create(ctx context.Context, tour *models.Tour) error
	Replace(ctx context.Context, id string, tour *models.Tour) (*models.Tour, error)
	Delete(ctx context.Context, id string) error
}

type CourseStore interface {
	ListByTour(ctx context.Context, tourID string) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type EventStore interface {
	ListByTour(ctx context.Context, tourID string) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}
