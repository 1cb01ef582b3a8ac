package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/db"
	"github.com/MinataFumi123/college-tour-website/handlers"
	"github.com/MinataFumi123/college-tour-website/store"
)

// maxPortAttempts bounds the port walk when the preferred port is taken.
const maxPortAttempts = 10

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect MongoDB client")
		}
	}()
	log.Info("MongoDB connected")

	database := client.Database(cfg.DatabaseName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.WithError(err).Fatal("Failed to create indexes")
	}

	router := handlers.NewRouter(handlers.Deps{
		Cfg:     cfg,
		Log:     log,
		Mongo:   client,
		Users:   store.NewMongoUserStore(database),
		Tours:   store.NewMongoTourStore(database),
		Courses: store.NewMongoCourseStore(database),
		Events:  store.NewMongoEventStore(database),
	})

	// A stale process may still hold the preferred port; walk forward a few
	// ports before giving up.
	port := cfg.Port
	for attempt := 0; attempt < maxPortAttempts; attempt++ {
		addr := fmt.Sprintf(":%d", port)
		log.WithField("addr", addr).Info("Server starting")
		if err = router.Run(addr); err == nil {
			return
		}
		log.WithError(err).Warnf("Could not listen on port %d, trying %d", port, port+1)
		port++
	}
	log.WithError(err).Fatal("Could not start server")
}
