package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/annguyen2k3/project-api-twitter/config"
	"github.com/annguyen2k3/project-api-twitter/db"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/handler"
	repo "github.com/annguyen2k3/project-api-twitter/internal/auth/repository/postgres"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	"github.com/annguyen2k3/project-api-twitter/internal/email"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	tokenRepo := repo.NewTokenRepository(pool)
	followerRepo := repo.NewFollowerRepository(pool)

	tokenService, err := service.NewTokenService(cfg)
	if err != nil {
		log.Error("failed to initialize token service", "error", err)
		os.Exit(1)
	}

	mailer := email.NewSender(cfg)
	userService := service.NewUserService(userRepo, tokenRepo, followerRepo, tokenService, mailer, cfg.PasswordSecret, log)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := handler.NewAuthMiddleware(tokenService, userService, userRepo, tokenRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
	})
	app.Use(fiberlogger.New())

	handler.RegisterRoutes(app, authHandler, userHandler, authMiddleware)

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
