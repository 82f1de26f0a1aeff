package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/config"
	"marketplace-admin/internal/app/dsn"
	"marketplace-admin/internal/app/handler"
	"marketplace-admin/internal/app/middleware"
	"marketplace-admin/internal/app/redis"
	"marketplace-admin/internal/app/repository"
	"marketplace-admin/internal/app/storage"
	"marketplace-admin/internal/pkg"
)

func StartServer(ctx context.Context) error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return errors.New("DSN string is empty. Check your .env file")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return fmt.Errorf("ошибка инициализации репозитория: %w", err)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("ошибка подключения к redis: %w", err)
	}
	defer redisClient.Close()

	var icons handler.IconStorage
	if cfg.MinIO.Endpoint != "" {
		iconStorage, err := storage.NewIconStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("ошибка подключения к minio: %w", err)
		}
		icons = iconStorage
	} else {
		logrus.Warn("MINIO_ENDPOINT is not set, icon upload disabled")
	}

	if err = handler.RegisterValidators(); err != nil {
		return err
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, icons, authHandler, cfg.BatchMaxRows)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	return pkg.NewApp(cfg, r, apiHandler, authMiddleware).RunApp(ctx)
}
