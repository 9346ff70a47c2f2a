package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"suggestion-bot/internal/adapters/discord"
	"suggestion-bot/internal/adapters/discord/commands"
	"suggestion-bot/internal/config"
	"suggestion-bot/internal/core/services"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config        *config.Store
	discord       *discordgo.Session
	router        *commands.Router
	handler       *commands.BotHandler
	metricsServer *http.Server
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store := config.NewStore(cfg)

	session, err := discord.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	adapter := discord.NewAdapter(session, discord.NewStateEmotes(session.State))

	handler := &commands.BotHandler{
		Store:       store,
		Suggestions: services.NewSuggestionService(adapter, adapter),
		Help:        services.NewHelpService(),
		Replier:     adapter,
	}

	router := commands.NewRouter(func() string { return store.Current().Prefix })
	if err := handler.Register(router); err != nil {
		return nil, err
	}

	appCtx, cancel := context.WithCancel(ctx)

	session.AddHandler(commands.ReadyHandler)
	session.AddHandler(router.HandleFunc(appCtx))

	return &App{
		config:  store,
		discord: session,
		router:  router,
		handler: handler,
		ctx:     appCtx,
		cancel:  cancel,
	}, nil
}

func (a *App) Run() error {
	a.startMetricsServer()

	if err := a.discord.Open(); err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	slog.Info("Suggestion bot started", "prefix", a.config.Current().Prefix)
	return nil
}

// Reload re-reads the configuration and rebuilds the command routes. The
// routes are built before the new configuration goes live, so a failure
// leaves both the configuration and the routes untouched.
func (a *App) Reload() error {
	var install func(*commands.Router)
	err := a.config.ReloadWith(func(cfg *config.Config) error {
		var err error
		install, err = a.handler.Bind(cfg.Suggestion)
		return err
	})
	if err != nil {
		return err
	}

	install(a.router)
	return nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.Current().MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server listening", "addr", a.metricsServer.Addr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	if a.cancel != nil {
		a.cancel()
	}

	var errs []error

	if a.discord != nil {
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	return errors.Join(errs...)
}
