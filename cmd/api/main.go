package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	authsvc "authflow/internal/auth"
	"authflow/internal/config"
	"authflow/internal/database"
	"authflow/internal/mailer"
	"authflow/internal/server"
	"authflow/internal/store"
)

func main() {
	cfg := config.Load()

	// Connect to Mongo (if DB not available, Connect will return an error)
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	defer func() { _ = database.Disconnect() }()

	users := store.NewMongoUserStore(database.GetClient(), cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index error: %v", err)
	}

	mail := mailer.NewMailtrapMailer(cfg.Mailtrap)
	svc := authsvc.NewService(users, mail, cfg.JWTSecret, cfg.JWTTTLHrs, cfg.ClientURL)

	// Start server
	srv := server.NewServer(cfg, svc)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
