package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/connorholly11/friend-meetup/internal/config"
	"github.com/connorholly11/friend-meetup/internal/database"
	"github.com/connorholly11/friend-meetup/internal/handlers"
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("ignoring .env: %v", err)
	}

	cfg := config.Load()
	logger.Init(cfg.Log.Level)
	utils.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	audit := services.NewAuditService(db, cfg.Audit.QueueSize)
	defer audit.Close()

	app := fiber.New(fiber.Config{AppName: "friend-meetup " + handlers.Version})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS(cfg.Server.FrontendURL))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	handlers.RegisterRoutes(app, db, handlers.NewServices(db, audit))

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":      cfg.Server.Port,
		"address":   listenAddr,
		"db_driver": cfg.DB.Driver,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(cfg.Server.ShutdownTimeout):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Printf("server error: %v", err)
		}
	}
}
