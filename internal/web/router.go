package web

import (
	"net/http"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Handler       *Handler
	Sessions      *session.Manager
	Log           *logger.Logger
	CORSOrigins   []string
	SecureCookies bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.SetHTMLTemplate(loadTemplates())

	h := cfg.Handler
	router.GET("/health", h.Health)

	app := router.Group("/")
	app.Use(Sessions(cfg.Sessions, cfg.SecureCookies))
	{
		app.GET("/", h.Page)
		app.GET("/api/state", h.State)

		app.POST("/credential", h.SetCredential)
		app.POST("/profile", h.SaveProfile)
		app.POST("/session/reset", h.ResetSession)

		app.POST("/ideas", h.Ideas)
		app.POST("/captions", h.Captions)
		app.POST("/calendar", h.Calendar)
		app.GET("/calendar/download", h.DownloadCalendar)
		app.POST("/voice/analyze", h.AnalyzeVoice)
		app.POST("/voice/rewrite", h.RewriteVoice)
	}

	return router
}
