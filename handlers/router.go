package handlers

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/middleware"
	"github.com/MinataFumi123/college-tour-website/store"
)

// Deps bundles everything the router needs. Mongo is optional and only
// feeds the debug endpoint.
type Deps struct {
	Cfg     *config.Config
	Log     *logrus.Logger
	Mongo   *mongo.Client
	Users   store.UserStore
	Tours   store.TourStore
	Courses store.CourseStore
	Events  store.EventStore
}

// NewRouter assembles the full route table.
func NewRouter(d Deps) *gin.Engine {
	if d.Cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))

	corsCfg := cors.Config{
		AllowOrigins:  d.Cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(corsCfg.AllowOrigins) != 1 || corsCfg.AllowOrigins[0] != "*" {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	auth := NewAuthHandler(d.Cfg, d.Users, d.Log)
	tours := NewTourHandler(d.Cfg, d.Tours, d.Log)
	courses := NewCourseHandler(d.Cfg, d.Tours, d.Courses, d.Log)
	events := NewEventHandler(d.Cfg, d.Tours, d.Events, d.Log)
	markers := NewMarkerHandler()
	debug := NewDebugHandler(d.Cfg, d.Mongo)

	requireAuth := middleware.RequireAuth(d.Cfg)
	requireAdmin := middleware.RequireAdmin(d.Cfg, d.Users)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.GET("/test", auth.Test)
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)
	authGroup.GET("/users", requireAuth, requireAdmin, auth.ListUsers)

	api.GET("/tours", tours.List)
	api.POST("/tours", requireAuth, tours.Create)
	api.GET("/tours/:tourId", tours.Get)
	api.PUT("/tours/:tourId", requireAuth, tours.Update)
	api.DELETE("/tours/:tourId", requireAuth, tours.Delete)

	api.GET("/tours/:tourId/courses", courses.List)
	api.POST("/tours/:tourId/courses", courses.Create)
	api.DELETE("/tours/:tourId/courses/:courseId", requireAuth, courses.Delete)

	api.GET("/tours/:tourId/events", events.List)
	api.POST("/tours/:tourId/events", events.Create)
	api.DELETE("/tours/:tourId/events/:eventId", requireAuth, events.Delete)

	// Legacy clients still call /api/colleges; there is only the Tour
	// entity, so rewrite and re-dispatch in process.
	api.Any("/colleges/*rest", func(c *gin.Context) {
		rest := strings.TrimSuffix(c.Param("rest"), "/")
		c.Request.URL.Path = "/api/tours" + rest
		r.HandleContext(c)
	})

	api.GET("/markers/college/:collegeId", markers.ListByCollege)
	api.GET("/check-auth", auth.CheckAuth)
	api.GET("/debug", debug.Status)

	return r
}
