package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/models"
	"github.com/MinataFumi123/college-tour-website/store"
)

type TourHandler struct {
	cfg   *config.Config
	tours store.TourStore
	log   *logrus.Logger
}

func NewTourHandler(cfg *config.Config, tours store.TourStore, log *logrus.Logger) *TourHandler {
	return &TourHandler{cfg: cfg, tours: tours, log: log}
}

type tourInput struct {
	Name        string    `json:"name"`
	ShortName   string    `json:"shortName"`
	Description string    `json:"description"`
	Established string    `json:"established"`
	Students    string    `json:"students"`
	Type        string    `json:"type"`
	TourInfo    string    `json:"tourInfo"`
	Image       string    `json:"image"`
	Location    []float64 `json:"location"`
	Address     string    `json:"address"`
	AdminEmail  string    `json:"adminEmail"`
}

// toTour applies the creation defaults for omitted optional fields.
func (in tourInput) toTour() models.Tour {
	tour := models.Tour{
		Name:        in.Name,
		ShortName:   in.ShortName,
		Description: in.Description,
		Established: in.Established,
		Students:    in.Students,
		Type:        in.Type,
		TourInfo:    in.TourInfo,
		Image:       in.Image,
		Location:    in.Location,
		Address:     in.Address,
		AdminEmail:  in.AdminEmail,
	}
	if tour.Established == "" {
		tour.Established = models.DefaultEstablished
	}
	if tour.Students == "" {
		tour.Students = models.DefaultStudents
	}
	if tour.Type == "" {
		tour.Type = models.DefaultType
	}
	if tour.Image == "" {
		tour.Image = models.DefaultImage
	}
	if tour.Location == nil {
		tour.Location = []float64{0, 0}
	}
	return tour
}

func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.tours.List(c.Request.Context())
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Server error fetching tours")
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) Create(c *gin.Context) {
	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	tour := input.toTour()
	tour.CreatedAt = time.Now().UTC()

	if err := h.tours.Create(c.Request.Context(), &tour); err != nil {
		serverError(c, h.cfg, h.log, err, "Error saving tour")
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) Get(c *gin.Context) {
	tour, err := h.tours.FindByID(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		h.tourError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// Update replaces the whole document. A tour with a non-empty adminEmail may
// only be edited by a request carrying that same adminEmail.
func (h *TourHandler) Update(c *gin.Context) {
	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("tourId")

	existing, err := h.tours.FindByID(ctx, id)
	if err != nil {
		h.tourError(c, err)
		return
	}

	if existing.AdminEmail != "" && existing.AdminEmail != input.AdminEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to edit this tour"})
		return
	}

	replacement := input.toTour()
	replacement.CreatedAt = existing.CreatedAt

	updated, err := h.tours.Replace(ctx, id, &replacement)
	if err != nil {
		h.tourError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TourHandler) Delete(c *gin.Context) {
	if err := h.tours.Delete(c.Request.Context(), c.Param("tourId")); err != nil {
		h.tourError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}

func (h *TourHandler) tourError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tour ID format"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Tour not found"})
	default:
		serverError(c, h.cfg, h.log, err, "Server error")
	}
}
