package domain

import (
	"strings"
	"time"
)

type Author struct {
	ID            string
	Username      string
	Discriminator string
	AvatarURL     string
}

func (a Author) Tag() string {
	return a.Username + "#" + a.Discriminator
}

// Invocation is one command message as seen by a handler. Args holds the
// words following the trigger token(s).
type Invocation struct {
	RawText   string
	Trigger   string
	Args      []string
	Mentioned bool
	GuildID   string
	ChannelID string
	MessageID string
	Author    Author
	InvokedAt time.Time
}

// ArgText returns the argument words joined by single spaces.
func (i Invocation) ArgText() string {
	return strings.Join(i.Args, " ")
}

type SuggestionRequest struct {
	RawText           string
	AuthorID          string
	AuthorDisplayName string
	AuthorAvatarURL   string
	InvokedAt         time.Time
}

func NewSuggestionRequest(inv Invocation) SuggestionRequest {
	return SuggestionRequest{
		RawText:           inv.RawText,
		AuthorID:          inv.Author.ID,
		AuthorDisplayName: inv.Author.Tag(),
		AuthorAvatarURL:   inv.Author.AvatarURL,
		InvokedAt:         inv.InvokedAt,
	}
}

// Suggestion is the formatted record posted to the suggestion channel.
type Suggestion struct {
	Body          string
	AuthorLabel   string
	AuthorIconURL string
	Footer        string
	Timestamp     time.Time
}

type PostedMessage struct {
	ChannelID string
	MessageID string
}

type Emote struct {
	ID       string
	Name     string
	Animated bool
}

// APIName is the form Discord expects when adding a reaction.
func (e Emote) APIName() string {
	if e.ID == "" {
		return e.Name
	}
	return e.Name + ":" + e.ID
}

type ReplyStyle int

const (
	ReplyInfo ReplyStyle = iota
	ReplySuccess
	ReplyWarning
	ReplyError
)

func (s ReplyStyle) String() string {
	switch s {
	case ReplySuccess:
		return "success"
	case ReplyWarning:
		return "warning"
	case ReplyError:
		return "error"
	default:
		return "info"
	}
}

type Reply struct {
	Style ReplyStyle
	Title string
	Text  string
}
