package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	router   *mux.Router
	svc      *services.Services
	secret   []byte
	validity time.Duration
	logger   logging.Logger

	// adviceWait bounds how long a request waits for the review advisor
	// before answering 202 Accepted.
	adviceWait time.Duration
}

func NewServer(svc *services.Services, secretKey string, validity time.Duration, logger logging.Logger) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		svc:        svc,
		secret:     []byte(secretKey),
		validity:   validity,
		logger:     logger.With("module", "http_server"),
		adviceWait: 30 * time.Second,
	}
	s.endpoints()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) endpoints() {
	r := s.router
	r.Use(s.withAccessLog, s.withSession)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no such endpoint"})
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	api.HandleFunc("/news", s.handleListNews).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", s.handleGetNews).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/tags", s.handleTags).Methods(http.MethodGet)

	auth := api.NewRoute().Subrouter()
	auth.Use(s.requireAuth)
	auth.HandleFunc("/news", s.handleCreateNews).Methods(http.MethodPost)
	auth.HandleFunc("/news/{id}", s.handleUpdateNews).Methods(http.MethodPut)
	auth.HandleFunc("/news/{id}", s.handleDeleteNews).Methods(http.MethodDelete)
	auth.HandleFunc("/news/{id}/submit", s.handleSubmit).Methods(http.MethodPost)
	auth.HandleFunc("/news/{id}/like", s.handleLike).Methods(http.MethodPost)
	auth.HandleFunc("/news/{id}/comments", s.handleComment).Methods(http.MethodPost)
	auth.HandleFunc("/me/news", s.handleMine).Methods(http.MethodGet)
	auth.HandleFunc("/me/drafts", s.handleDrafts).Methods(http.MethodGet)
	auth.HandleFunc("/me/stats", s.handleStats).Methods(http.MethodGet)
	auth.HandleFunc("/review/pending", s.handlePending).Methods(http.MethodGet)
	auth.HandleFunc("/review/{id}/approve", s.handleApprove).Methods(http.MethodPost)
	auth.HandleFunc("/review/{id}/reject", s.handleReject).Methods(http.MethodPost)
	auth.HandleFunc("/review/{id}/advice", s.handleAdvice).Methods(http.MethodPost)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
