package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/cache"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/config"
	dbpkg "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/db"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/logger"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg, zlog)
	rdb := cache.NewClient(cfg, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, zlog)

	zlog.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
