package services

import (
	"context"
	"sync"
	"time"

	"suggestion-bot/internal/core/domain"
)

type mockGateway struct {
	lookupChannelFunc  func(ctx context.Context, channelID string) (bool, error)
	postSuggestionFunc func(ctx context.Context, channelID string, s domain.Suggestion) (*domain.PostedMessage, error)
	resolveEmoteFunc   func(ref string) (*domain.Emote, bool)
	addReactionFunc    func(ctx context.Context, msg domain.PostedMessage, e domain.Emote) error
	deleteMessageFunc  func(ctx context.Context, msg domain.PostedMessage) error

	mu        sync.Mutex
	posts     []domain.Suggestion
	reactions []string
	deleted   []domain.PostedMessage
}

func (m *mockGateway) LookupChannel(ctx context.Context, channelID string) (bool, error) {
	if m.lookupChannelFunc != nil {
		return m.lookupChannelFunc(ctx, channelID)
	}
	return true, nil
}

func (m *mockGateway) PostSuggestion(ctx context.Context, channelID string, s domain.Suggestion) (*domain.PostedMessage, error) {
	m.mu.Lock()
	m.posts = append(m.posts, s)
	m.mu.Unlock()

	if m.postSuggestionFunc != nil {
		return m.postSuggestionFunc(ctx, channelID, s)
	}
	return &domain.PostedMessage{ChannelID: channelID, MessageID: "suggestion-msg"}, nil
}

func (m *mockGateway) ResolveEmote(ref string) (*domain.Emote, bool) {
	if m.resolveEmoteFunc != nil {
		return m.resolveEmoteFunc(ref)
	}
	return nil, false
}

func (m *mockGateway) AddReaction(ctx context.Context, msg domain.PostedMessage, e domain.Emote) error {
	m.mu.Lock()
	m.reactions = append(m.reactions, e.APIName())
	m.mu.Unlock()

	if m.addReactionFunc != nil {
		return m.addReactionFunc(ctx, msg, e)
	}
	return nil
}

func (m *mockGateway) DeleteMessage(ctx context.Context, msg domain.PostedMessage) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, msg)
	m.mu.Unlock()

	if m.deleteMessageFunc != nil {
		return m.deleteMessageFunc(ctx, msg)
	}
	return nil
}

func (m *mockGateway) postCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

type mockReplier struct {
	replyFunc func(ctx context.Context, inv domain.Invocation, r domain.Reply) (*domain.PostedMessage, error)

	mu      sync.Mutex
	replies []domain.Reply
}

func (m *mockReplier) Reply(ctx context.Context, inv domain.Invocation, r domain.Reply) (*domain.PostedMessage, error) {
	m.mu.Lock()
	m.replies = append(m.replies, r)
	m.mu.Unlock()

	if m.replyFunc != nil {
		return m.replyFunc(ctx, inv, r)
	}
	return &domain.PostedMessage{ChannelID: inv.ChannelID, MessageID: "ack-msg"}, nil
}

func (m *mockReplier) repliesWith(style domain.ReplyStyle) []domain.Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Reply
	for _, r := range m.replies {
		if r.Style == style {
			out = append(out, r)
		}
	}
	return out
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
}

// fakeScheduler records afterFunc calls instead of starting timers.
type fakeScheduler struct {
	mu    sync.Mutex
	calls []scheduledCall
}

func (f *fakeScheduler) afterFunc(d time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, scheduledCall{delay: d, fn: fn})
}

func (f *fakeScheduler) fireAll() {
	f.mu.Lock()
	calls := append([]scheduledCall(nil), f.calls...)
	f.mu.Unlock()

	for _, c := range calls {
		c.fn()
	}
}
