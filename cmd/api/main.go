package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pampered-pooch/site-api/internal/application/contact"
	"github.com/pampered-pooch/site-api/internal/application/review"
	"github.com/pampered-pooch/site-api/internal/application/sitecontent"
	"github.com/pampered-pooch/site-api/internal/config"
	"github.com/pampered-pooch/site-api/internal/infrastructure/dynamo"
	"github.com/pampered-pooch/site-api/internal/infrastructure/filecache"
	"github.com/pampered-pooch/site-api/internal/infrastructure/memory"
	"github.com/pampered-pooch/site-api/internal/infrastructure/outscraper"
	s3infra "github.com/pampered-pooch/site-api/internal/infrastructure/s3"
	"github.com/pampered-pooch/site-api/internal/infrastructure/smtp"
	"github.com/pampered-pooch/site-api/internal/pkg/msglog"
	transporthttp "github.com/pampered-pooch/site-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Verification store: process-local by default, DynamoDB when configured.
	var verifications contact.VerificationStore
	switch cfg.VerificationBackend {
	case "dynamo":
		client := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), client, cfg.VerificationTable)
		verifications = dynamo.NewVerificationStore(client, cfg.VerificationTable)
	default:
		verifications = memory.NewVerificationStore()
	}

	// Review cache persistence: local JSON file by default, S3 when configured.
	var cacheStore review.CacheStore
	switch cfg.ReviewsCacheBackend {
	case "s3":
		cacheStore = s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName, "reviews-cache.json")
	default:
		cacheStore = filecache.NewStore(cfg.ReviewsCachePath)
	}

	mailer := smtp.NewMailer(cfg)

	contactSvc := contact.NewService(contact.ServiceDeps{
		Store:      verifications,
		Mailer:     mailer,
		MessageLog: msglog.New(cfg.MessageLogPath),
		Recipient:  cfg.MessageRecipient,
		FromName:   cfg.SMTPFromName,
	})

	reviewSvc := review.NewService(outscraper.NewClient(cfg), cacheStore)
	reviewSvc.LoadFromStore(context.Background())

	siteSvc := sitecontent.NewService(cfg.BusinessInfoPath, cfg.ServicesPath)

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Contact:     contactSvc,
		Reviews:     reviewSvc,
		SiteContent: siteSvc,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // the review fetch can take a while upstream
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		log.Printf("SMTP host: %s, reviews place: %s", cfg.SMTPHost, cfg.GooglePlaceID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
