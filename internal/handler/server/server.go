package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/careerhive/jobmatch/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *zap.Logger
}

func NewServer(h *handler.Handler, addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:    addr,
			Handler: requestLogger(logger, mux),
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
