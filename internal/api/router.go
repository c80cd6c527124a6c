package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DanRulev/finquest.git/internal/api/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	router.GET("/health", h.Health)
	router.GET("/leaderboard", h.Leaderboard)

	users := router.Group("/users/:id")
	{
		users.GET("/profile", h.Profile)
		users.GET("/lessons", h.Lessons)
	}

	return router
}

type Server struct {
	srv *http.Server
	log *zap.Logger
}

func NewServer(addr string, router http.Handler, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start serves until Shutdown is called. It never returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.log.Info("http server starting", zap.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
