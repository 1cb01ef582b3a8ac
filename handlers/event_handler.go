package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/models"
	"github.com/MinataFumi123/college-tour-website/store"
)

type EventHandler struct {
	cfg    *config.Config
	tours  store.TourStore
	events store.EventStore
	log    *logrus.Logger
}

func NewEventHandler(cfg *config.Config, tours store.TourStore, events store.EventStore, log *logrus.Logger) *EventHandler {
	return &EventHandler{cfg: cfg, tours: tours, events: events, log: log}
}

func (h *EventHandler) List(c *gin.Context) {
	if _, ok := requireParentTour(c, h.cfg, h.log, h.tours); !ok {
		return
	}

	events, err := h.events.ListByTour(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	tourID, ok := requireParentTour(c, h.cfg, h.log, h.tours)
	if !ok {
		return
	}

	var input struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	if input.Title == "" || input.Date == "" || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, date, and description are required"})
		return
	}

	event := models.Event{
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
		TourID:      tourID,
	}
	if err := h.events.Create(c.Request.Context(), &event); err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Delete removes an event after confirming it belongs to the tour named in
// the path.
func (h *EventHandler) Delete(c *gin.Context) {
	eventID := c.Param("eventId")
	if _, err := primitive.ObjectIDFromHex(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	tourID, ok := requireParentTour(c, h.cfg, h.log, h.tours)
	if !ok {
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		} else {
			serverError(c, h.cfg, h.log, err, "Server error")
		}
		return
	}

	if event.TourID != tourID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Event does not belong to this college"})
		return
	}

	if err := h.events.Delete(c.Request.Context(), eventID); err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	c.Status(http.StatusNoContent)
}
