package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NecoOcean/sky-take-out/configs"
	"github.com/NecoOcean/sky-take-out/middlewares"
	"github.com/NecoOcean/sky-take-out/pkg/logger"
	"github.com/NecoOcean/sky-take-out/routes"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(gin.Mode() == gin.ReleaseMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	if err := configs.SetupDatabase(); err != nil {
		zlog.Fatal("migrate database", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		zlog.Fatal("seed admin", zap.Error(err))
	}
	if err := configs.SeedCategories(); err != nil {
		zlog.Fatal("seed categories", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		zlog.Fatal("create upload dir", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/uploads", cfg.UploadDir)
	routes.RegisterRoutes(r, configs.DB(), cfg, zlog)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
