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

	"github.com/isdelr/warbler-be/internal/api"
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/config"
	"github.com/isdelr/warbler-be/internal/database"
	"github.com/isdelr/warbler-be/internal/logger"
	"github.com/isdelr/warbler-be/internal/monitoring"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/internal/websocket"
	"github.com/isdelr/warbler-be/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init()

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	userService := services.NewUserService(db)
	followService := services.NewFollowService(db)
	messageService := services.NewMessageService(db)
	sessionService := auth.NewSessionService(db, cfg.SessionSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour, cfg.IsProduction())

	// Set up and run the background session sweeper
	sweeper := monitoring.NewSessionSweeper(sessionService)
	go sweeper.Run()

	// Set up templates
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Set up router
	router := api.NewRouter(sessionService, userService, followService, messageService, hub, renderer)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
