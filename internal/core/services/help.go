package services

import (
	"strings"

	"suggestion-bot/internal/config"
	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/formatting"
)

const SuggestCommandName = "Suggest Command"

type HelpService struct{}

func NewHelpService() *HelpService {
	return &HelpService{}
}

// Render builds the help entry for the suggest command. command is the
// trigger as users type it, e.g. "!suggest".
func (h *HelpService) Render(command string, cfg config.Suggestion) domain.Reply {
	var sb strings.Builder
	sb.WriteString(cfg.Description)

	if usage := formatting.MsgUsage(cfg.UsageInstructions, command); usage != "" {
		sb.WriteString("\n\n**Usage**\n")
		sb.WriteString(usage)
	}

	if examples := formatting.MsgUsage(cfg.UsageExamples, command); examples != "" {
		sb.WriteString("\n\n**Example Usage**\n")
		sb.WriteString(examples)
	}

	if cfg.CooldownSeconds > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(cfg.Cooldown().String())
		sb.WriteString(" cooldown per user")
	}

	return domain.Reply{
		Style: domain.ReplyInfo,
		Title: SuggestCommandName,
		Text:  sb.String(),
	}
}
