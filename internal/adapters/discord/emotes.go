package discord

import (
	"strconv"

	"suggestion-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
)

// EmoteSource lists the custom emotes visible to the bot.
type EmoteSource interface {
	Emojis() []*discordgo.Emoji
}

type stateEmotes struct {
	state *discordgo.State
}

// NewStateEmotes reads custom emotes from the guilds cached in the session state.
func NewStateEmotes(state *discordgo.State) EmoteSource {
	return &stateEmotes{state: state}
}

func (s *stateEmotes) Emojis() []*discordgo.Emoji {
	s.state.RLock()
	defer s.state.RUnlock()

	var out []*discordgo.Emoji
	for _, g := range s.state.Guilds {
		out = append(out, g.Emojis...)
	}
	return out
}

// resolveEmote looks ref up as an emote id first. When ref is not a valid id
// or no emote has that id, the first emote whose name matches ref
// case-insensitively wins.
func resolveEmote(emojis []*discordgo.Emoji, ref string) (*domain.Emote, bool) {
	if _, err := strconv.ParseUint(ref, 10, 64); err == nil {
		for _, e := range emojis {
			if e != nil && e.ID == ref {
				return toEmote(e), true
			}
		}
	}

	fold := cases.Fold()
	want := fold.String(ref)
	for _, e := range emojis {
		if e != nil && fold.String(e.Name) == want {
			return toEmote(e), true
		}
	}

	return nil, false
}

func toEmote(e *discordgo.Emoji) *domain.Emote {
	return &domain.Emote{ID: e.ID, Name: e.Name, Animated: e.Animated}
}
