package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MinataFumi123/college-tour-website/models"
)

// MarkerHandler serves map markers from a process-local list. Nothing is
// persisted; a restart empties it.
type MarkerHandler struct {
	mu      sync.RWMutex
	markers []models.Marker
}

func NewMarkerHandler() *MarkerHandler {
	return &MarkerHandler{}
}

// Add seeds a marker, assigning an id when the caller left it blank.
func (h *MarkerHandler) Add(m models.Marker) models.Marker {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	h.mu.Lock()
	h.markers = append(h.markers, m)
	h.mu.Unlock()
	return m
}

// ListByCollege returns the markers registered for one college.
func (h *MarkerHandler) ListByCollege(c *gin.Context) {
	collegeID := c.Param("collegeId")

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.Marker, 0)
	for _, m := range h.markers {
		if m.CollegeID == collegeID {
			out = append(out, m)
		}
	}
	c.JSON(http.StatusOK, out)
}
