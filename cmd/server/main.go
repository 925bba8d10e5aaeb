// @title Fyyur API
// @version 1.0
// @description Venue and artist listings with show booking against artist availability.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"fyyur/config"
	_ "fyyur/docs"
	"fyyur/internal/adapters/email"
	"fyyur/internal/database/migrations"
	delivery "fyyur/internal/delivery/http"
	"fyyur/internal/delivery/http/controllers"
	"fyyur/internal/repository/postgres"
	"fyyur/internal/services"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected")

	if cfg.AutoMigrate {
		if err := migrate(ctx, cfg.DBUrl, logger); err != nil {
			return err
		}
	}

	repos := postgres.NewRepositories(db)
	uow := postgres.NewUnitOfWork(db)

	genreService := services.NewGenreService(repos.Genres, cfg.RequestTimeout)
	if err := genreService.Seed(ctx); err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	venueService := services.NewVenueService(repos.Venues, repos.Shows, repos.Genres, uow, cfg.RequestTimeout)
	artistService := services.NewArtistService(repos.Artists, repos.Shows, repos.Genres, repos.Availability, uow, cfg.RequestTimeout)
	showService := services.NewShowService(repos.Shows, cfg.RequestTimeout)
	bookingService := services.NewBookingService(uow, emailService, cfg.Email.BookingNotifyAddress, logger, cfg.RequestTimeout)

	handler := delivery.NewHandler(logger, delivery.HandlerConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, delivery.Controllers{
		Home:    controllers.NewHomeController(logger, venueService, artistService, genreService),
		Venues:  controllers.NewVenueController(logger, venueService),
		Artists: controllers.NewArtistController(logger, artistService, bookingService),
		Shows:   controllers.NewShowController(logger, showService, bookingService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func openDB(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies the schema on its own connection; the migrator closes it when done.
func migrate(ctx context.Context, url string, logger *slog.Logger) error {
	db, err := openDB(ctx, url)
	if err != nil {
		return err
	}
	runner := migrations.NewRunner(db, logger)
	defer runner.Close()
	return runner.Up()
}
