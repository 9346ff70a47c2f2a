package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"suggestion-bot/internal/config"
)

const testToken = "MTk4NjIyNDgzNDcxOTI1MjQ4.Cl2FMQ.ZnCjm1XVW7vRze4b7Cq4se7kKWs"

func testConfig() *config.Config {
	return &config.Config{
		Token:       testToken,
		Prefix:      "!",
		MetricsAddr: "127.0.0.1:0",
		Suggestion: config.Suggestion{
			MinLength: 30,
			ChannelID: "111111111111111111",
		},
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Shutdown(context.Background())

	if app.discord == nil {
		t.Fatal("Discord session not initialized")
	}
	if app.router == nil || app.handler == nil {
		t.Fatal("Command routing not initialized")
	}
	if app.config.Current().Prefix != "!" {
		t.Errorf("unexpected prefix %q", app.config.Current().Prefix)
	}
}

func TestApp_Shutdown(t *testing.T) {
	appCtx, cancel := context.WithCancel(context.Background())

	metricsServer := &http.Server{Addr: "127.0.0.1:0"}
	go func() {
		_ = metricsServer.ListenAndServe()
	}()
	time.Sleep(10 * time.Millisecond)

	app := &App{
		config:        config.NewStore(testConfig()),
		metricsServer: metricsServer,
		ctx:           appCtx,
		cancel:        cancel,
	}

	ctx, done := context.WithTimeout(context.Background(), 1*time.Second)
	defer done()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	select {
	case <-appCtx.Done():
	default:
		t.Error("App context was not cancelled")
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: config.NewStore(&config.Config{}),
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: config.NewStore(testConfig()),
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}
	if app.metricsServer.Addr != "127.0.0.1:0" {
		t.Errorf("unexpected metrics addr %q", app.metricsServer.Addr)
	}

	_ = app.metricsServer.Close()
}

func TestApp_Reload(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Shutdown(context.Background())

	t.Setenv("DISCORD_TOKEN", testToken)
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("SUGGEST_CHANNEL_ID", "222222222222222222")
	t.Setenv("SUGGEST_COOLDOWN", "30")

	if err := app.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	cfg := app.config.Current()
	if cfg.Prefix != "?" {
		t.Errorf("expected reloaded prefix, got %q", cfg.Prefix)
	}
	if cfg.Suggestion.ChannelID != "222222222222222222" {
		t.Errorf("expected reloaded channel, got %q", cfg.Suggestion.ChannelID)
	}
}

func TestApp_Reload_KeepsPreviousOnError(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Shutdown(context.Background())

	t.Setenv("DISCORD_TOKEN", testToken)
	t.Setenv("SUGGEST_CHANNEL_ID", "not-a-snowflake")

	err = app.Reload()
	if err == nil {
		t.Fatal("expected reload to fail")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("unexpected error: %v", err)
	}

	if got := app.config.Current().Suggestion.ChannelID; got != "111111111111111111" {
		t.Errorf("expected previous channel to stay active, got %q", got)
	}
}
