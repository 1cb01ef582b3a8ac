package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/store"
)

// requireParentTour validates the tourId path parameter and confirms the
// referenced tour exists, answering 400/404/500 itself when it does not.
// The check is best-effort: nothing prevents the tour vanishing between
// this lookup and the child write.
func requireParentTour(c *gin.Context, cfg *config.Config, log *logrus.Logger, tours store.TourStore) (primitive.ObjectID, bool) {
	tourID := c.Param("tourId")

	oid, err := primitive.ObjectIDFromHex(tourID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tour ID format"})
		return primitive.NilObjectID, false
	}

	if _, err := tours.FindByID(c.Request.Context(), tourID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "College/tour not found"})
		} else {
			serverError(c, cfg, log, err, "Server error")
		}
		return primitive.NilObjectID, false
	}

	return oid, true
}
