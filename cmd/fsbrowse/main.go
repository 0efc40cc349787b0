package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fsbrowse/internal/config"
	"fsbrowse/internal/logging"
	"fsbrowse/internal/server"
)

const (
	defaultPort       = "5000"
	defaultConfigPath = "config.yaml"
)

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}

	return fallback
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := logging.Init(logging.Config{
		Level:  envOr("FSBROWSE_LOG_LEVEL", "info"),
		Format: envOr("FSBROWSE_LOG_FORMAT", "json"),
	}); err != nil {
		panic("logging init error: " + err.Error())
	}
	defer logging.Sync()

	configPath := envOr("FSBROWSE_CONFIG", defaultConfigPath)

	srv, err := server.New(config.FileLoader(configPath))
	if err != nil {
		logging.Fatal("failed to initialize server", zap.Error(err))
	}

	addr := "0.0.0.0:" + envOr("PORT", defaultPort)
	logging.Info("fsbrowse listening",
		zap.String("addr", addr),
		zap.String("config", configPath))

	if err := srv.Run(addr); err != nil {
		logging.Fatal("failed to start server", zap.Error(err))
	}
}
