package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Suggestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suggestions_total",
		Help: "Suggest command invocations by outcome",
	}, []string{"outcome"})

	SuggestionPostDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "suggestion_post_duration_seconds",
		Help:    "Duration of posting a suggestion to the suggestion channel",
		Buckets: prometheus.DefBuckets,
	})

	CommandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "command_invocations_total",
		Help: "Total number of dispatched text commands",
	}, []string{"command"})

	CommandThrottled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "command_throttled_total",
		Help: "Total number of commands rejected by a cooldown",
	}, []string{"command"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord messages sent",
	}, []string{"kind", "status"})

	DiscordReactionsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_reactions_added_total",
		Help: "Total number of reactions added to suggestions",
	}, []string{"status"})
)
