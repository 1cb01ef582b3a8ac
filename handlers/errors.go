package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MinataFumi123/college-tour-website/config"
)

// serverError answers a 500 with a human-readable message. Internal error
// detail is only exposed outside production.
func serverError(c *gin.Context, cfg *config.Config, log *logrus.Logger, err error, message string) {
	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error(message)

	body := gin.H{"message": message}
	if !cfg.IsProduction() {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
