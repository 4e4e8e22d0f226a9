package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "leadmend/docs"
	"leadmend/internal/config"
	"leadmend/internal/email/noop"
	"leadmend/internal/email/ses"
	"leadmend/internal/enrich"
	"leadmend/internal/handler"
	"leadmend/internal/port"
	"leadmend/internal/repository/postgres"
	"leadmend/internal/router"
	"leadmend/internal/service"
	"leadmend/internal/session"
	s3storage "leadmend/internal/storage/s3"
)

// @title Lead Mend API
// @version 1.0
// @description CSV lead enrichment: import sessions, enrichment workflows, and job history.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(context.Background(), &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	jobRepo := postgres.NewJobRepo(db)

	// Artifact storage is optional; without a bucket, archival and presigned
	// links are disabled.
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewArtifactStore(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Print("server: no S3 bucket configured, artifact archival disabled")
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Session store with TTL eviction
	store := session.NewStore(session.Limits{
		MaxFileBytes: cfg.Upload.MaxFileSizeBytes(),
		PreviewRows:  cfg.Upload.PreviewRows,
	}, cfg.Session.TTL, cfg.Session.SweepInterval)

	// Services
	enrichClient := enrich.NewClient(&cfg.Enrich)
	authSvc := service.NewAuthService(userRepo, emailSender, cfg.JWT)
	importSvc := service.NewImportService(store, enrichClient, jobRepo, storage, &cfg.S3)
	jobSvc := service.NewJobService(jobRepo, storage, &cfg.S3)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	sessionH := handler.NewSessionHandler(importSvc)
	jobH := handler.NewJobHandler(jobSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, authH, sessionH, jobH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.StartJanitor(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Print("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	wg.Wait()
	return nil
}
