// Package app wires configuration, storage, advisors and services into the
// two NewsBoard programs.
package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/newsboard/internal/advisor"
	"github.com/dmitrijs2005/newsboard/internal/api"
	"github.com/dmitrijs2005/newsboard/internal/backup"
	"github.com/dmitrijs2005/newsboard/internal/cli"
	"github.com/dmitrijs2005/newsboard/internal/config"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/seed"
	"github.com/dmitrijs2005/newsboard/internal/services"
	"github.com/dmitrijs2005/newsboard/internal/store"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *store.Store
	services *services.Services
	backup   *backup.Service
}

// NewApp opens the store, applies seed data and builds the services.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	if cfg.Seed {
		if err := seed.Apply(ctx, st, seed.Sample(), cfg.AdminPassword, logger); err != nil {
			st.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	var (
		reviewer   services.ReviewAdvisor
		summarizer services.SummaryAdvisor
	)
	if cfg.AdvisorEndpoint != "" {
		client := advisor.NewChatClient(advisor.Config{
			Endpoint: cfg.AdvisorEndpoint,
			Model:    cfg.AdvisorModel,
			APIKey:   cfg.AdvisorAPIKey,
			Timeout:  cfg.AdvisorTimeout,
		})
		reviewer = advisor.NewReviewer(client)
		summarizer = advisor.NewSummarizer(client)
	} else {
		logger.Info(ctx, "advisor disabled")
	}

	svc := services.New(st, reviewer, summarizer, logger)
	if err := svc.Auth.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		st.Close()
		return nil, fmt.Errorf("ensure admin: %w", err)
	}

	a := &App{config: cfg, logger: logger, store: st, services: svc}
	if cfg.S3Bucket != "" {
		a.backup = backup.NewService(cfg, st.Files(), logger)
	}
	return a, nil
}

func (a *App) Services() *services.Services { return a.services }

func (a *App) Close() error {
	return a.store.Close()
}

// initSignalHandler cancels the context on SIGINT, SIGTERM or SIGQUIT.
func initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// RunServer serves the HTTP API until a termination signal arrives.
func (a *App) RunServer(ctx context.Context) error {
	ctx, cancel := initSignalHandler(ctx)
	defer cancel()

	a.logger.Info(ctx, "Starting app...")
	srv := api.NewServer(a.services, a.config.SecretKey, a.config.TokenValidity, a.logger)
	return srv.Run(ctx, a.config.HTTPAddr)
}

// RunCLI runs the interactive client on in and out.
func (a *App) RunCLI(ctx context.Context, in io.Reader, out io.Writer) {
	var snap cli.Snapshotter
	if a.backup != nil {
		snap = a.backup
	}
	cli.NewApp(a.services, snap, in, out, a.logger).Run(ctx)
}
