package formatting

import (
	"fmt"
	"strings"
	"time"
)

const (
	MsgEmptySuggestion = "You must include a suggestion to suggest something... Duh!"
	MsgPostFailed      = "Failed to send the suggestion message, please make sure I can send embed messages in the suggestion channel!"
	MsgGuildOnly       = "This command can only be used in a server."
	MsgUnknownHelp     = "There is no command with that name."
)

func MsgTooShort(minLength int) string {
	return fmt.Sprintf("The suggestion must be at least `%d` characters long!", minLength)
}

func MsgChannelNotFound(channelID string) string {
	return fmt.Sprintf("Failed to find a text channel with the ID of `%s`", channelID)
}

func MsgCooldown(remaining time.Duration) string {
	seconds := int(remaining.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("Too many attempts, you can use this command again in %d second(s).", seconds)
}

func SuggestionAuthor(tag string) string {
	return "Suggestion by " + tag
}

func SuggestionFooter(userID string) string {
	return "User ID: " + userID
}

// MsgUsage replaces the :command placeholder used in usage lines with the
// command as the user has to type it.
func MsgUsage(lines []string, command string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("`")
		sb.WriteString(strings.ReplaceAll(line, ":command", command))
		sb.WriteString("`\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
