package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// CommandTimeout bounds the Discord calls made while handling one command.
const CommandTimeout = 30 * time.Second

type Router struct {
	mu     sync.RWMutex
	routes map[string]CommandHandler
	prefix func() string
}

// NewRouter dispatches messages starting with the prefix returned by prefix,
// or with a mention of the bot, to the registered commands.
func NewRouter(prefix func() string) *Router {
	slog.Info("Router initialized")
	return &Router{
		routes: make(map[string]CommandHandler),
		prefix: prefix,
	}
}

// Register binds name to handler, replacing any previous binding.
func (r *Router) Register(name string, handler CommandHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[strings.ToLower(name)] = handler
}

func (r *Router) handler(name string) (CommandHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.routes[name]
	return h, ok
}

func (r *Router) Handle(ctx context.Context, botID string, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	inv, ok := r.Parse(botID, m.Message)
	if !ok {
		return
	}

	handler, ok := r.handler(inv.Trigger)
	if !ok {
		slog.Debug("No handler found for command", "name", inv.Trigger)
		return
	}

	slog.Info("Router received command", "name", inv.Trigger, "guild_id", inv.GuildID, "author_id", inv.Author.ID)
	metrics.CommandInvocations.WithLabelValues(inv.Trigger).Inc()

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	handler(ctx, inv)
}

// HandleFunc adapts the router to a discordgo MessageCreate handler.
func (r *Router) HandleFunc(ctx context.Context) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		var botID string
		if s.State != nil && s.State.User != nil {
			botID = s.State.User.ID
		}
		r.Handle(ctx, botID, m)
	}
}

// Parse turns a message into an invocation. It recognizes "<prefix><name> args"
// and "<@bot> <name> args".
func (r *Router) Parse(botID string, m *discordgo.Message) (domain.Invocation, bool) {
	fields := strings.Fields(m.Content)
	if len(fields) == 0 {
		return domain.Invocation{}, false
	}

	var (
		name      string
		args      []string
		mentioned bool
	)

	prefix := r.prefix()
	switch {
	case botID != "" && isMention(fields[0], botID):
		if len(fields) < 2 {
			return domain.Invocation{}, false
		}
		name, args, mentioned = fields[1], fields[2:], true
	case prefix != "" && strings.HasPrefix(fields[0], prefix) && len(fields[0]) > len(prefix):
		name, args = strings.TrimPrefix(fields[0], prefix), fields[1:]
	default:
		return domain.Invocation{}, false
	}

	invokedAt := m.Timestamp
	if invokedAt.IsZero() {
		invokedAt = time.Now()
	}

	return domain.Invocation{
		RawText:   m.Content,
		Trigger:   strings.ToLower(name),
		Args:      args,
		Mentioned: mentioned,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		Author:    toAuthor(m.Author),
		InvokedAt: invokedAt,
	}, true
}

func isMention(token, botID string) bool {
	return token == "<@"+botID+">" || token == "<@!"+botID+">"
}

func toAuthor(u *discordgo.User) domain.Author {
	if u == nil {
		return domain.Author{}
	}
	return domain.Author{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		AvatarURL:     u.AvatarURL(""),
	}
}
