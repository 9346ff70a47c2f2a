package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"suggestion-bot/internal/config"
	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/core/services"
	"suggestion-bot/internal/formatting"

	"github.com/bwmarrin/discordgo"
)

const (
	CommandSuggest = "suggest"
	CommandHelp    = "help"
)

type BotHandler struct {
	Store       *config.Store
	Suggestions *services.SuggestionService
	Help        *services.HelpService
	Replier     Replier

	mu            sync.Mutex
	cooldownSpecs []string
	cooldown      Middleware
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Suggestion bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

// Register binds the bot commands to router using the current configuration.
func (h *BotHandler) Register(router *Router) error {
	install, err := h.Bind(h.Store.Current().Suggestion)
	if err != nil {
		return err
	}
	install(router)
	return nil
}

// Bind builds the command routes for cfg without touching any router. The
// returned func installs them. The cooldown middleware, and the cooldowns it
// tracks, is kept as long as the cooldown settings do not change.
func (h *BotHandler) Bind(cfg config.Suggestion) (func(*Router), error) {
	specs := h.Suggestions.Middleware(cfg)

	h.mu.Lock()
	cooldown := h.cooldown
	reuse := cooldown != nil && slices.Equal(specs, h.cooldownSpecs)
	h.mu.Unlock()

	if !reuse {
		mw, err := WithMiddleware(specs, h.Replier)
		if err != nil {
			return nil, fmt.Errorf("build %s middleware: %w", CommandSuggest, err)
		}
		cooldown = mw
	}

	suggest := Chain(h.Suggest, WithGuildOnly(h.Replier), cooldown)

	return func(router *Router) {
		h.mu.Lock()
		h.cooldown, h.cooldownSpecs = cooldown, specs
		h.mu.Unlock()

		router.Register(CommandSuggest, suggest)
		router.Register(CommandHelp, h.HelpCommand)
	}, nil
}

func (h *BotHandler) Suggest(ctx context.Context, inv domain.Invocation) {
	cfg := h.Store.Current()

	result := h.Suggestions.Handle(ctx, inv, cfg.Suggestion)
	if result.Err != nil {
		slog.Debug("Suggest command finished", "state", result.State.String(), "error", result.Err)
		return
	}
	slog.Debug("Suggest command finished", "state", result.State.String())
}

// HelpCommand answers "help" and "help suggest".
func (h *BotHandler) HelpCommand(ctx context.Context, inv domain.Invocation) {
	cfg := h.Store.Current()

	if len(inv.Args) > 0 && !strings.EqualFold(strings.TrimPrefix(inv.Args[0], cfg.Prefix), CommandSuggest) {
		reply(ctx, h.Replier, inv, domain.ReplyError, formatting.MsgUnknownHelp)
		return
	}

	rendered := h.Help.Render(cfg.Prefix+CommandSuggest, cfg.Suggestion)
	if _, err := h.Replier.Reply(ctx, inv, rendered); err != nil {
		slog.Error("Failed to send help", "channel_id", inv.ChannelID, "error", err)
	}
}
