package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/promptdeck/backend/internal/config"
	"github.com/promptdeck/backend/internal/handlers"
	"github.com/promptdeck/backend/internal/store"
)

type Server struct {
	cfg     *config.Config
	handler *handlers.Handler
}

// New builds the HTTP server around an already-connected store.
func New(cfg *config.Config, st *store.Store) *http.Server {
	s := &Server{
		cfg:     cfg,
		handler: handlers.NewHandler(st),
	}

	router := s.RegisterRoutes()

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Msg("server configured")
	return srv
}

// RegisterRoutes builds the gin engine with CORS and every endpoint.
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// Allowed origins come from config, comma-separated.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(s.cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * 3600,
	}))

	// Liveness, outside the API group
	r.GET("/health", s.handler.Health.Health)

	// API routes. Everything is public; the system is anonymous.
	api := r.Group("/api")
	{
		api.GET("/votes", s.handler.Vote.GetVotes)
		api.POST("/votes", s.handler.Vote.PostVote)

		api.GET("/comments", s.handler.Comment.GetComments)
		api.POST("/comments", s.handler.Comment.CreateComment)
		api.GET("/comments/counts", s.handler.Comment.GetCounts)

		api.GET("/prompts", s.handler.Submission.GetSubmissions)
		api.POST("/prompts", s.handler.Submission.CreateSubmission)
	}

	return r
}
