package formatting

import (
	"time"

	"suggestion-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorError   = 0xe74c3c
	ColorInfo    = 0x3498db
	ColorNeutral = 0x7289da
)

func SuggestionEmbed(s domain.Suggestion) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: s.Body,
		Color:       ColorNeutral,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    s.AuthorLabel,
			IconURL: s.AuthorIconURL,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: s.Footer,
		},
		Timestamp: s.Timestamp.UTC().Format(time.RFC3339),
	}
}

func ReplyEmbed(r domain.Reply) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       r.Title,
		Description: r.Text,
		Color:       colorFor(r.Style),
	}
}

func colorFor(style domain.ReplyStyle) int {
	switch style {
	case domain.ReplySuccess:
		return ColorSuccess
	case domain.ReplyWarning:
		return ColorWarning
	case domain.ReplyError:
		return ColorError
	default:
		return ColorInfo
	}
}
