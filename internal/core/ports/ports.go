package ports

import (
	"context"

	"suggestion-bot/internal/core/domain"
)

type SuggestionGateway interface {
	// LookupChannel reports whether the text channel exists and is visible to the bot.
	LookupChannel(ctx context.Context, channelID string) (bool, error)
	PostSuggestion(ctx context.Context, channelID string, suggestion domain.Suggestion) (*domain.PostedMessage, error)
	// ResolveEmote finds a custom emote by id first, then by name.
	ResolveEmote(ref string) (*domain.Emote, bool)
	AddReaction(ctx context.Context, msg domain.PostedMessage, emote domain.Emote) error
	DeleteMessage(ctx context.Context, msg domain.PostedMessage) error
}

type Replier interface {
	Reply(ctx context.Context, inv domain.Invocation, reply domain.Reply) (*domain.PostedMessage, error)
}
