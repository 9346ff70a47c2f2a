package commands

import (
	"context"

	"suggestion-bot/internal/core/domain"
)

// CommandHandler runs one parsed text command.
type CommandHandler func(ctx context.Context, inv domain.Invocation)

type Replier interface {
	Reply(ctx context.Context, inv domain.Invocation, reply domain.Reply) (*domain.PostedMessage, error)
}
