package core

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/da-maltsev/fit-track/src/fittrackd/api"
	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/da-maltsev/fit-track/src/fittrackd/backup"
	"github.com/da-maltsev/fit-track/src/fittrackd/db"
	_ "github.com/da-maltsev/fit-track/src/fittrackd/docs"
	"github.com/da-maltsev/fit-track/src/fittrackd/storage"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Server holds the HTTP server instance and configuration
type Server struct {
	router        *gin.Engine
	httpServer    *http.Server
	database      *db.Database
	backupManager *backup.Manager
	api           *api.API
}

// NewServer creates a new Server instance
func NewServer(database *db.Database, backupManager *backup.Manager) (*Server, error) {
	// Set Gin mode based on log level
	if viper.GetString("log.level") == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestLogger())

	// Initialize auth components
	userRepo := auth.NewUserRepository(database)
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:   viper.GetString("auth.secret"),
		Issuer:   "fittrackd",
		TokenTTL: viper.GetDuration("auth.token_ttl"),
	}, database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Create API instance with all dependencies
	api.SetLogger(log)
	api.SetVersionInfo(VersionInfo)
	apiInstance := api.New(api.Config{
		UserRepo:     userRepo,
		ExerciseRepo: db.NewExerciseRepository(database),
		TrainingRepo: db.NewTrainingRepository(database),
		Tokens:       tokens,
	})

	// Register all routes
	apiInstance.RegisterRoutes(router)

	s := &Server{
		router:        router,
		database:      database,
		backupManager: backupManager,
		api:           apiInstance,
	}

	if backupManager != nil {
		backupManager.Start()
	}

	return s, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives
func (s *Server) Run() error {
	bind := viper.GetString("server.bind")
	port := viper.GetInt("server.port")
	addr := fmt.Sprintf("%s:%d", bind, port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("Starting fittrackd server", "address", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Received signal, shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.backupManager != nil {
		log.Info("Stopping backup manager")
		s.backupManager.Stop()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// runServer is called by the root command to start the server
func runServer() error {
	log.Info("fittrackd starting",
		"version", VersionInfo.Version,
		"build_date", VersionInfo.BuildDate,
	)

	// Initialize database
	dbPath := viper.GetString("database.path")
	log.Info("Initializing database", "persist_path", dbPath)

	database, err := db.New(db.Config{
		PersistPath: dbPath,
		LoadOnStart: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Populate the exercise catalog (no-op when already seeded)
	if err := db.NewExerciseRepository(database).SeedExercises(); err != nil {
		return fmt.Errorf("failed to seed exercise catalog: %w", err)
	}

	// Initialize backup manager when enabled
	var backupManager *backup.Manager
	backupCfg := backup.Config{
		Enabled:  viper.GetBool("backup.enabled"),
		Interval: viper.GetDuration("backup.interval"),
		Keep:     viper.GetInt("backup.keep"),
		Prefix:   "snapshots",
	}
	if backupCfg.Enabled {
		backend, err := newStorageBackend()
		if err != nil {
			return fmt.Errorf("failed to initialize backup storage: %w", err)
		}
		backup.SetLogger(log)
		backupManager = backup.NewManager(backupCfg, database, backend)
	}

	server, err := NewServer(database, backupManager)
	if err != nil {
		return err
	}

	// Run server (blocks until shutdown signal)
	err = server.Run()

	// Ensure database is persisted on shutdown
	log.Info("Persisting database to disk")
	if dbErr := database.Shutdown(); dbErr != nil {
		log.Error("Failed to persist database", "error", dbErr)
		if err == nil {
			err = dbErr
		}
	} else {
		log.Info("Database persisted successfully")
	}

	return err
}

// newStorageBackend builds the backup storage backend from configuration.
// An S3 endpoint forces the S3 backend regardless of storage.type.
func newStorageBackend() (storage.Backend, error) {
	storageType := viper.GetString("storage.type")
	s3Endpoint := viper.GetString("storage.s3.endpoint")
	if s3Endpoint != "" {
		storageType = "s3"
	}

	log.Info("Initializing backup storage", "type", storageType)

	backend, err := storage.New(storage.Config{
		Type: storageType,
		Local: storage.LocalConfig{
			BasePath: viper.GetString("storage.local.path"),
		},
		S3: storage.S3Config{
			Endpoint:        s3Endpoint,
			Region:          viper.GetString("storage.s3.region"),
			Bucket:          viper.GetString("storage.s3.bucket"),
			AccessKeyID:     viper.GetString("storage.s3.access_key"),
			SecretAccessKey: viper.GetString("storage.s3.secret_key"),
			UsePathStyle:    viper.GetBool("storage.s3.path_style"),
		},
	})
	if err != nil {
		return nil, err
	}

	if s3Backend, ok := backend.(*storage.S3Backend); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s3Backend.EnsureBucket(ctx); err != nil {
			log.Warn("S3 bucket not accessible - backups may fail", "error", err)
		}
	}

	return backend, nil
}
