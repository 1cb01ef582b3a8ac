package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MinataFumi123/college-tour-website/config"
)

type DebugHandler struct {
	cfg    *config.Config
	client *mongo.Client // nil when no database is attached
}

func NewDebugHandler(cfg *config.Config, client *mongo.Client) *DebugHandler {
	return &DebugHandler{cfg: cfg, client: client}
}

// Status reports API liveness and database connectivity.
func (h *DebugHandler) Status(c *gin.Context) {
	connected := false
	if h.client != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		connected = h.client.Ping(ctx, nil) == nil
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "API is working",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"environment":    h.cfg.Environment,
		"mongoConnected": connected,
	})
}
