package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/formatting"
	"suggestion-bot/internal/metrics"

	"golang.org/x/time/rate"
)

type Middleware func(CommandHandler) CommandHandler

// Chain wraps handler so that middlewares run in the order given.
func Chain(handler CommandHandler, middlewares ...Middleware) CommandHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			handler = middlewares[i](handler)
		}
	}
	return handler
}

// WithMiddleware builds the middleware described by specs such as
// "throttle:user,1,60". An empty list yields a pass-through middleware.
func WithMiddleware(specs []string, replier Replier) (Middleware, error) {
	var chain []Middleware
	for _, spec := range specs {
		mw, err := parseMiddleware(spec, replier)
		if err != nil {
			return nil, err
		}
		chain = append(chain, mw)
	}

	return func(next CommandHandler) CommandHandler {
		return Chain(next, chain...)
	}, nil
}

func parseMiddleware(spec string, replier Replier) (Middleware, error) {
	name, params, _ := strings.Cut(strings.TrimSpace(spec), ":")
	switch name {
	case "throttle":
		t, err := parseThrottle(params)
		if err != nil {
			return nil, fmt.Errorf("middleware %q: %w", spec, err)
		}
		return t.middleware(replier), nil
	default:
		return nil, fmt.Errorf("unknown middleware %q", name)
	}
}

type throttleScope string

const (
	scopeUser    throttleScope = "user"
	scopeChannel throttleScope = "channel"
	scopeGuild   throttleScope = "guild"
)

// throttle keeps one token bucket per scope key.
type throttle struct {
	scope  throttleScope
	burst  int
	period time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func parseThrottle(params string) (*throttle, error) {
	parts := strings.Split(params, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected <scope>,<burst>,<seconds>, got %q", params)
	}

	scope := throttleScope(strings.TrimSpace(parts[0]))
	switch scope {
	case scopeUser, scopeChannel, scopeGuild:
	default:
		return nil, fmt.Errorf("unknown throttle scope %q", scope)
	}

	burst, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("invalid throttle burst %q", parts[1])
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || seconds < 1 {
		return nil, fmt.Errorf("invalid throttle period %q", parts[2])
	}

	return &throttle{
		scope:    scope,
		burst:    burst,
		period:   time.Duration(seconds) * time.Second,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

func (t *throttle) key(inv domain.Invocation) string {
	switch t.scope {
	case scopeChannel:
		return inv.ChannelID
	case scopeGuild:
		return inv.GuildID
	default:
		return inv.Author.ID
	}
}

func (t *throttle) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(t.period/time.Duration(t.burst)), t.burst)
		t.limiters[key] = l
	}
	return l
}

// wait reports how long the caller has to wait before the next use, or zero
// when the use is allowed and has been counted.
func (t *throttle) wait(key string, now time.Time) time.Duration {
	r := t.limiter(key).ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return delay
	}
	return 0
}

func (t *throttle) middleware(replier Replier) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(ctx context.Context, inv domain.Invocation) {
			if delay := t.wait(t.key(inv), time.Now()); delay > 0 {
				slog.Info("Command throttled", "name", inv.Trigger, "author_id", inv.Author.ID, "retry_in", delay)
				metrics.CommandThrottled.WithLabelValues(inv.Trigger).Inc()
				reply(ctx, replier, inv, domain.ReplyWarning, formatting.MsgCooldown(delay))
				return
			}
			next(ctx, inv)
		}
	}
}

// WithGuildOnly rejects invocations sent in direct messages.
func WithGuildOnly(replier Replier) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(ctx context.Context, inv domain.Invocation) {
			if inv.GuildID == "" {
				reply(ctx, replier, inv, domain.ReplyError, formatting.MsgGuildOnly)
				return
			}
			next(ctx, inv)
		}
	}
}

func reply(ctx context.Context, replier Replier, inv domain.Invocation, style domain.ReplyStyle, text string) {
	if replier == nil {
		return
	}
	if _, err := replier.Reply(ctx, inv, domain.Reply{Style: style, Text: text}); err != nil {
		slog.Error("Failed to send reply", "channel_id", inv.ChannelID, "style", style.String(), "error", err)
	}
}
