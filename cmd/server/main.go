package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-serving-service/internal/adapters/primary/http/dto"
	"model-serving-service/internal/adapters/primary/http/handlers"
	"model-serving-service/internal/adapters/primary/http/middleware"
	"model-serving-service/internal/adapters/secondary/localfs"
	"model-serving-service/internal/adapters/secondary/postgres"
	"model-serving-service/internal/config"
	ports "model-serving-service/internal/core/ports/output"
	"model-serving-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Artifact source (file by default, postgres for blob storage)
	var repo ports.ArtifactRepository
	var pool *pgxpool.Pool
	switch cfg.Model.Source {
	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		log.Info("database connection established")

		repo = postgres.NewArtifactRepository(pool, cfg.Model.Name)
	default:
		repo = localfs.NewArtifactRepository(cfg.Model.Path, cfg.Model.MetadataPath)
	}

	// Signing key comes from the environment (external secret provider)
	signingKey, err := cfg.Model.SigningKeyBytes()
	if err != nil {
		log.Fatalf("signing key: %v", err)
	}

	// Core services
	verifier := services.NewArtifactVerifier(signingKey, cfg.Model.VerifyDisabled)
	store := services.NewModelStore(repo, verifier, cfg.Model.LoadTimeout)
	engine := services.NewInferenceEngine()

	// Load at startup unless lazy loading is configured; a bad artifact
	// should fail deployment, not the first prediction.
	if !cfg.Model.LazyLoad {
		if _, err := store.GetModel(context.Background()); err != nil {
			log.Fatalf("load model: %v", err)
		}
	}

	// HTTP surface
	h := handlers.New(store, engine)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:      "healthy",
			ModelLoaded: store.Loaded(),
			Version:     handlers.ServiceVersion,
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Model Serving Service",
			"version": handlers.ServiceVersion,
			"endpoints": gin.H{
				"health":     "/healthz",
				"model_info": "/api/v1/model/info",
				"predict":    "/api/v1/predict",
				"reload":     "/api/v1/model/reload",
			},
		})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
