package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bilingual-todo/internal/store"
)

// LanguageStore persists the display-language preference.
type LanguageStore interface {
	SaveLanguage(ctx context.Context, arabic bool) error
	LoadLanguage(ctx context.Context) (bool, error)
}

// RelayConfig holds the upstream translation provider settings. The
// credential stays server-side; clients only ever see the relay.
type RelayConfig struct {
	UpstreamURL string
	APIKey      string
	Timeout     time.Duration
}

// Server exposes the translation relay and the task-intent API.
type Server struct {
	store    *store.Store
	langs    LanguageStore
	log      *zap.SugaredLogger
	relay    RelayConfig
	upstream *http.Client
	router   *gin.Engine
}

func New(s *store.Store, langs LanguageStore, log *zap.SugaredLogger, relay RelayConfig) *Server {
	timeout := relay.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	srv := &Server{
		store:    s,
		langs:    langs,
		log:      log,
		relay:    relay,
		upstream: &http.Client{Timeout: timeout},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	api := router.Group("/api")
	{
		api.POST("/translate", srv.handleTranslate)

		api.GET("/tasks", srv.handleListTasks)
		api.POST("/tasks", srv.handleAddTask)
		api.POST("/tasks/:id/toggle", srv.handleToggleTask)
		api.PUT("/tasks/:id", srv.handleEditTask)
		api.PUT("/tasks/:id/priority", srv.handlePrioritizeTask)
		api.DELETE("/tasks/:id", srv.handleDeleteTask)

		api.GET("/language", srv.handleGetLanguage)
		api.PUT("/language", srv.handleSetLanguage)
	}

	srv.router = router
	return srv
}

// Handler returns the HTTP handler for mounting in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
