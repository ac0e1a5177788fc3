package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plateful/restaurant-admin/internal/config"
	dbpkg "github.com/plateful/restaurant-admin/internal/db"
	"github.com/plateful/restaurant-admin/internal/logger"
	"github.com/plateful/restaurant-admin/internal/mailer"
	"github.com/plateful/restaurant-admin/internal/photostore"
	"github.com/plateful/restaurant-admin/internal/routes"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	var photos photostore.Store
	if cfg.PhotoStorage == "s3" {
		photos = photostore.NewS3Store(cfg)
	} else {
		local, err := photostore.NewLocalStore(cfg.PhotoDir)
		if err != nil {
			logger.Fatal("failed to init photo storage", zap.Error(err))
		}
		photos = local
	}

	mail := mailer.NewSMTPMailer(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, photos, mail)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
