package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorsRegistered(t *testing.T) {
	Suggestions.WithLabelValues("done").Inc()
	CommandInvocations.WithLabelValues("suggest").Inc()
	CommandThrottled.WithLabelValues("suggest").Inc()
	DiscordMessagesSent.WithLabelValues("suggestion", "success").Inc()
	DiscordReactionsAdded.WithLabelValues("success").Inc()
	SuggestionPostDuration.Observe(0.1)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := make(map[string]bool)
	for _, f := range families {
		found[f.GetName()] = true
	}

	for _, name := range []string{
		"suggestions_total",
		"suggestion_post_duration_seconds",
		"command_invocations_total",
		"command_throttled_total",
		"discord_messages_sent_total",
		"discord_reactions_added_total",
	} {
		if !found[name] {
			t.Errorf("expected %s to be registered", name)
		}
	}
}
