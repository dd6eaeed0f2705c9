package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/elite-admin/internal/audit"
	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/elite-admin/internal/db"
	"github.com/BruksfildServices01/elite-admin/internal/handlers"
	"github.com/BruksfildServices01/elite-admin/internal/middleware"
	"github.com/BruksfildServices01/elite-admin/internal/quote"
	"github.com/BruksfildServices01/elite-admin/internal/routes"
	"github.com/BruksfildServices01/elite-admin/internal/storage"
	"github.com/BruksfildServices01/elite-admin/internal/timezone"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogger(cfg)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if err := dbpkg.SeedAdmin(context.Background(), db, cfg.AdminUser, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}

	var revoker auth.Revoker = auth.NoopRevoker{}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, logout revocation degraded")
		}
		revoker = auth.NewRedisRevoker(rdb)
	}

	var logo *quote.Logo
	if cfg.QuoteLogoPath != "" {
		logo, err = quote.LoadLogo(cfg.QuoteLogoPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.QuoteLogoPath).Msg("quote logo disabled")
		}
	}

	var archive storage.Archive
	if cfg.S3Bucket != "" {
		archive = storage.NewS3Archive(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Audit:       auditDispatcher,
		Issuer:      auth.NewIssuer(cfg.SessionSecret, cfg.SessionTTL),
		Revoker:     revoker,
		Cookie:      handlers.CookieSettings{Name: cfg.SessionCookie, Secure: cfg.SecureCookies},
		Location:    timezone.Location(cfg.Timezone),
		Logo:        logo,
		Archive:     archive,
		CORSOrigins: cfg.CORSOrigins,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := auditDispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Msg("audit drain")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	// zerolog.Ctx falls back to this outside a request
	zerolog.DefaultContextLogger = &log.Logger
}
