package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitsync/fitness-tracker/internal/api"
	"fitsync/fitness-tracker/internal/config"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/storage"
	"fitsync/fitness-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Fitness Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// --- Snapshot store ---
	kv, err := newSnapshotStore(cfg.Snapshot)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize snapshot store (%s): %v", cfg.Snapshot.Backend, err)
	}
	log.Printf("Snapshot store ready (backend: %s)", cfg.Snapshot.Backend)

	// --- Remote mirror (best-effort, optional) ---
	var m mirror.Mirror = mirror.Nop{}
	if cfg.Mirror.Enabled {
		client, err := mirror.ConnectMongo(cfg.Mirror.MongoURI)
		if err != nil {
			// The mirror is never authoritative; start without it.
			log.Printf("ERROR: Could not connect mirror MongoDB, continuing without mirror: %v", err)
		} else {
			defer func() {
				log.Println("Disconnecting mirror MongoDB...")
				if err := mirror.DisconnectMongo(client); err != nil {
					log.Printf("ERROR: Failed to disconnect mirror: %v", err)
				}
			}()
			m = mirror.NewMongoMirror(client.Database(cfg.Mirror.Database))
			log.Println("Remote mirror connected.")
		}
	}

	// --- Entity store ---
	entityStore := store.New(kv, m, logger)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer loadCancel()
	if err := entityStore.Load(loadCtx); err != nil {
		log.Fatalf("FATAL: Could not load persisted snapshot: %v", err)
	}
	log.Println("Entity store loaded.")

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(entityStore, kv, logger, cfg.JWT.Secret, cfg.JWT.Expiration)
	trainerService := service.NewTrainerService(entityStore)
	workoutService := service.NewWorkoutService(entityStore)
	nutritionService := service.NewNutritionService(entityStore)
	progressService := service.NewProgressService(entityStore)
	messageService := service.NewMessageService(entityStore)
	statsService := service.NewStatsService(entityStore)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, entityStore,
		authService, trainerService, workoutService,
		nutritionService, progressService, messageService, statsService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	// Let in-flight snapshot and mirror writes land before exiting.
	entityStore.Flush()

	log.Println("Server exiting.")
}

// newSnapshotStore builds the configured durable key-value backend.
func newSnapshotStore(cfg config.SnapshotConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "s3":
		return storage.NewS3Store(cfg.S3)
	case "redis":
		return storage.NewRedisStore(cfg.Redis)
	default:
		return storage.NewFileStore(cfg.Dir)
	}
}
