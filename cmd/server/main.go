package main

import (
	"log"

	"github.com/BerylCAtieno/creator-command-center/internal/config"
	"github.com/BerylCAtieno/creator-command-center/internal/generator"
	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/BerylCAtieno/creator-command-center/internal/panels"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/BerylCAtieno/creator-command-center/internal/web"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// API keys are entered per session in the browser, never read from the environment.
	backend := generator.NewGeminiBackend(cfg.Model)
	client := generator.NewClient(backend, appLog.With("component", "generator"))

	sessions := session.NewManager(cfg.SessionTTL, appLog.With("component", "session"))
	controller := panels.NewController(client, appLog.With("component", "panels"))
	handler := web.NewHandler(controller, sessions, appLog.With("component", "web"), cfg.Production())

	router := web.NewRouter(web.RouterConfig{
		Handler:       handler,
		Sessions:      sessions,
		Log:           appLog.With("component", "http"),
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.Production(),
	})

	appLog.Info("Creator Command Center starting",
		"port", cfg.Port,
		"model", backend.Model(),
		"env", cfg.Env,
		"session_ttl", cfg.SessionTTL,
	)
	appLog.Info("UI available", "url", "http://localhost:"+cfg.Port+"/")

	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Server failed to start", "error", err)
	}
}
