package formatting

import (
	"testing"
	"time"

	"suggestion-bot/internal/core/domain"
)

func TestSuggestionEmbed(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	embed := SuggestionEmbed(domain.Suggestion{
		Body:          "Add dark mode",
		AuthorLabel:   "Suggestion by Alice#0420",
		AuthorIconURL: "https://cdn.example/a.png",
		Footer:        "User ID: 42",
		Timestamp:     ts,
	})

	if embed.Description != "Add dark mode" {
		t.Errorf("unexpected description %q", embed.Description)
	}
	if embed.Author == nil || embed.Author.Name != "Suggestion by Alice#0420" || embed.Author.IconURL != "https://cdn.example/a.png" {
		t.Errorf("unexpected author %+v", embed.Author)
	}
	if embed.Footer == nil || embed.Footer.Text != "User ID: 42" {
		t.Errorf("unexpected footer %+v", embed.Footer)
	}
	if embed.Timestamp != "2024-05-01T10:30:00Z" {
		t.Errorf("expected UTC RFC3339 timestamp, got %q", embed.Timestamp)
	}
}

func TestReplyEmbed_Colors(t *testing.T) {
	tests := []struct {
		style    domain.ReplyStyle
		expected int
	}{
		{domain.ReplySuccess, ColorSuccess},
		{domain.ReplyWarning, ColorWarning},
		{domain.ReplyError, ColorError},
		{domain.ReplyInfo, ColorInfo},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			embed := ReplyEmbed(domain.Reply{Style: tt.style, Title: "T", Text: "body"})
			if embed.Color != tt.expected {
				t.Errorf("expected color %#x, got %#x", tt.expected, embed.Color)
			}
			if embed.Title != "T" || embed.Description != "body" {
				t.Errorf("unexpected embed %+v", embed)
			}
		})
	}
}
