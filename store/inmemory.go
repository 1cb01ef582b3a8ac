package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MinataFumi123/college-tour-website/models"
)

// The in-memory stores mirror the Mongo implementations' error semantics
// (ErrInvalidID for malformed hex, ErrNotFound for absent documents,
// ErrDuplicate for unique-index violations) so handler tests run without a
// live database.

type InMemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == oid {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	for i := range out {
		out[i].Password = ""
	}
	return out, nil
}

type InMemoryTourStore struct {
	mu    sync.RWMutex
	tours []models.Tour
}

func NewInMemoryTourStore() *InMemoryTourStore {
	return &InMemoryTourStore{}
}

func (s *InMemoryTourStore) List(_ context.Context) ([]models.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tour, len(s.tours))
	copy(out, s.tours)
	return out, nil
}

func (s *InMemoryTourStore) FindByID(_ context.Context, id string) (*models.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tours {
		if t.ID == oid {
			t := t
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryTourStore) Create(_ context.Context, tour *models.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tour.ID.IsZero() {
		tour.ID = primitive.NewObjectID()
	}
	s.tours = append(s.tours, *tour)
	return nil
}

func (s *InMemoryTourStore) Replace(_ context.Context, id string, tour *models.Tour) (*models.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tours {
		if t.ID == oid {
			tour.ID = oid
			s.tours[i] = *tour
			updated := *tour
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryTourStore) Delete(_ context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tours {
		if t.ID == oid {
			s.tours = append(s.tours[:i], s.tours[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type InMemoryCourseStore struct {
	mu      sync.RWMutex
	courses []models.Course
}

func NewInMemoryCourseStore() *InMemoryCourseStore {
	return &InMemoryCourseStore{}
}

func (s *InMemoryCourseStore) ListByTour(_ context.Context, tourID string) ([]models.Course, error) {
	oid, err := objectID(tourID)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, 0)
	for _, c := range s.courses {
		if c.TourID == oid {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *InMemoryCourseStore) FindByID(_ context.Context, id string) (*models.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == oid {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryCourseStore) Create(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	s.courses = append(s.courses, *course)
	return nil
}

func (s *InMemoryCourseStore) Delete(_ context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.ID == oid {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type InMemoryEventStore struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{}
}

func (s *InMemoryEventStore) ListByTour(_ context.Context, tourID string) ([]models.Event, error) {
	oid, err := objectID(tourID)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, 0)
	for _, e := range s.events {
		if e.TourID == oid {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *InMemoryEventStore) FindByID(_ context.Context, id string) (*models.Event, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == oid {
			e := e
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryEventStore) Create(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	s.events = append(s.events, *event)
	return nil
}

func (s *InMemoryEventStore) Delete(_ context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID == oid {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
