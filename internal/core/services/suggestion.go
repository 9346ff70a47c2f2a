package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"suggestion-bot/internal/config"
	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/core/ports"
	"suggestion-bot/internal/formatting"
	"suggestion-bot/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// AcknowledgementLifetime is how long the success reply stays before it is deleted.
const AcknowledgementLifetime = 45 * time.Second

type State int

const (
	StateRejected State = iota
	StatePostFailed
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRejected:
		return "rejected"
	case StatePostFailed:
		return "post_failed"
	default:
		return "done"
	}
}

type Result struct {
	State  State
	Err    error
	Posted *domain.PostedMessage
}

type SuggestionService struct {
	gateway   ports.SuggestionGateway
	replier   ports.Replier
	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

func NewSuggestionService(gateway ports.SuggestionGateway, replier ports.Replier) *SuggestionService {
	return &SuggestionService{
		gateway: gateway,
		replier: replier,
		now:     time.Now,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Middleware returns the cooldown middleware for the suggest command, or nil
// to keep the router default.
func (s *SuggestionService) Middleware(cfg config.Suggestion) []string {
	if cfg.CooldownSeconds < 1 {
		return nil
	}
	return []string{fmt.Sprintf("throttle:user,1,%d", cfg.CooldownSeconds)}
}

func (s *SuggestionService) Handle(ctx context.Context, inv domain.Invocation, cfg config.Suggestion) Result {
	if len(inv.Args) == 0 {
		return s.reject(ctx, inv, domain.ErrEmptyInput, formatting.MsgEmptySuggestion)
	}

	req := domain.NewSuggestionRequest(inv)
	text := req.RawText[prefixLength(req.RawText, inv.Mentioned):]

	if utf8.RuneCountInString(inv.ArgText()) < cfg.MinLength {
		return s.reject(ctx, inv, &domain.TooShortError{MinLength: cfg.MinLength}, formatting.MsgTooShort(cfg.MinLength))
	}

	found, err := s.gateway.LookupChannel(ctx, cfg.ChannelID)
	if err != nil {
		slog.Error("Failed to look up suggestion channel", "channel_id", cfg.ChannelID, "error", err)
	}
	if !found {
		return s.reject(ctx, inv, &domain.ChannelNotFoundError{ChannelID: cfg.ChannelID}, formatting.MsgChannelNotFound(cfg.ChannelID))
	}

	record := domain.Suggestion{
		Body:          text,
		AuthorLabel:   formatting.SuggestionAuthor(req.AuthorDisplayName),
		AuthorIconURL: req.AuthorAvatarURL,
		Footer:        formatting.SuggestionFooter(req.AuthorID),
		Timestamp:     s.now(),
	}

	start := time.Now()
	posted, err := s.gateway.PostSuggestion(ctx, cfg.ChannelID, record)
	metrics.SuggestionPostDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("Failed to post suggestion", "channel_id", cfg.ChannelID, "author_id", req.AuthorID, "error", err)
		s.reply(ctx, inv, domain.ReplyWarning, formatting.MsgPostFailed)
		metrics.Suggestions.WithLabelValues(StatePostFailed.String()).Inc()
		return Result{State: StatePostFailed, Err: fmt.Errorf("%w: %w", domain.ErrPostFailed, err)}
	}

	slog.Info("Suggestion posted", "channel_id", posted.ChannelID, "message_id", posted.MessageID, "author_id", req.AuthorID)
	s.followUp(ctx, inv, *posted, cfg)

	metrics.Suggestions.WithLabelValues(StateDone.String()).Inc()
	return Result{State: StateDone, Posted: posted}
}

// followUp acknowledges the author and attaches the vote reactions. Each step
// is attempted once and fails on its own.
func (s *SuggestionService) followUp(ctx context.Context, inv domain.Invocation, posted domain.PostedMessage, cfg config.Suggestion) {
	var g errgroup.Group

	g.Go(func() error {
		return s.acknowledge(ctx, inv, cfg.SuccessMessage)
	})

	for _, ref := range []string{cfg.YesEmote, cfg.NoEmote} {
		ref := ref
		g.Go(func() error {
			return s.react(ctx, posted, ref)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("Suggestion follow-up incomplete", "message_id", posted.MessageID, "error", err)
	}
}

func (s *SuggestionService) acknowledge(ctx context.Context, inv domain.Invocation, message string) error {
	if message == "" {
		message = config.DefaultSuccessMessage
	}

	ack, err := s.replier.Reply(ctx, inv, domain.Reply{Style: domain.ReplySuccess, Text: message})
	if err != nil {
		return fmt.Errorf("send acknowledgement: %w", err)
	}
	if ack == nil {
		return nil
	}

	deleteCtx := context.WithoutCancel(ctx)
	s.afterFunc(AcknowledgementLifetime, func() {
		if err := s.gateway.DeleteMessage(deleteCtx, *ack); err != nil {
			slog.Warn("Failed to delete acknowledgement", "channel_id", ack.ChannelID, "message_id", ack.MessageID, "error", err)
		}
	})
	return nil
}

func (s *SuggestionService) react(ctx context.Context, posted domain.PostedMessage, ref string) error {
	if ref == "" {
		return nil
	}

	emote, ok := s.gateway.ResolveEmote(ref)
	if !ok {
		slog.Debug("Emote not found, skipping reaction", "ref", ref)
		return nil
	}

	return s.gateway.AddReaction(ctx, posted, *emote)
}

func (s *SuggestionService) reject(ctx context.Context, inv domain.Invocation, err error, message string) Result {
	slog.Info("Suggestion rejected", "author_id", inv.Author.ID, "reason", err)
	s.reply(ctx, inv, domain.ReplyError, message)
	metrics.Suggestions.WithLabelValues(outcomeOf(err)).Inc()
	return Result{State: StateRejected, Err: err}
}

func (s *SuggestionService) reply(ctx context.Context, inv domain.Invocation, style domain.ReplyStyle, message string) {
	if _, err := s.replier.Reply(ctx, inv, domain.Reply{Style: style, Text: message}); err != nil {
		slog.Error("Failed to reply to invocation", "channel_id", inv.ChannelID, "style", style.String(), "error", err)
	}
}

// prefixLength is the length of the trigger token(s) plus the separating
// space. Mention-style invocations span two tokens.
func prefixLength(raw string, mentioned bool) int {
	n := 1
	if mentioned {
		n = 2
	}

	tokens := strings.Split(raw, " ")
	if len(tokens) < n {
		n = len(tokens)
	}

	length := len(strings.Join(tokens[:n], " ")) + 1
	if length > len(raw) {
		return len(raw)
	}
	return length
}

func outcomeOf(err error) string {
	var tooShort *domain.TooShortError
	var notFound *domain.ChannelNotFoundError

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "empty_input"
	case errors.As(err, &tooShort):
		return "too_short"
	case errors.As(err, &notFound):
		return "channel_not_found"
	default:
		return StateRejected.String()
	}
}
