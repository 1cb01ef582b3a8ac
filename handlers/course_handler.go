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

type CourseHandler struct {
	cfg     *config.Config
	tours   store.TourStore
	courses store.CourseStore
	log     *logrus.Logger
}

func NewCourseHandler(cfg *config.Config, tours store.TourStore, courses store.CourseStore, log *logrus.Logger) *CourseHandler {
	return &CourseHandler{cfg: cfg, tours: tours, courses: courses, log: log}
}

func (h *CourseHandler) List(c *gin.Context) {
	if _, ok := requireParentTour(c, h.cfg, h.log, h.tours); !ok {
		return
	}

	courses, err := h.courses.ListByTour(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Create(c *gin.Context) {
	tourID, ok := requireParentTour(c, h.cfg, h.log, h.tours)
	if !ok {
		return
	}

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	if input.Name == "" || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and description are required"})
		return
	}

	course := models.Course{
		Name:        input.Name,
		Description: input.Description,
		TourID:      tourID,
	}
	if err := h.courses.Create(c.Request.Context(), &course); err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	c.JSON(http.StatusCreated, course)
}

// Delete removes a course after confirming it belongs to the tour named in
// the path.
func (h *CourseHandler) Delete(c *gin.Context) {
	courseID := c.Param("courseId")
	if _, err := primitive.ObjectIDFromHex(courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	tourID, ok := requireParentTour(c, h.cfg, h.log, h.tours)
	if !ok {
		return
	}

	course, err := h.courses.FindByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		} else {
			serverError(c, h.cfg, h.log, err, "Server error")
		}
		return
	}

	if course.TourID != tourID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Course does not belong to this college"})
		return
	}

	if err := h.courses.Delete(c.Request.Context(), courseID); err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}
	c.Status(http.StatusNoContent)
}
