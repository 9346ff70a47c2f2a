package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPrefix         = "!"
	DefaultMetricsAddr    = ":9090"
	DefaultDescription    = "Suggest a feature to the server."
	DefaultMinLength      = 30
	DefaultSuccessMessage = "Thank you for your suggestion!"
)

type Config struct {
	Token       string
	Prefix      string
	MetricsAddr string
	LogLevel    string
	Suggestion  Suggestion
}

// Suggestion holds the settings of the suggest command. Values are typed and
// defaulted once at load time; handlers only ever read a snapshot.
type Suggestion struct {
	Description       string
	UsageInstructions []string
	UsageExamples     []string
	CooldownSeconds   int
	MinLength         int
	ChannelID         string
	SuccessMessage    string
	// YesEmote and NoEmote are emote ids or names. Empty means unset.
	YesEmote string
	NoEmote  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := readSecret("discord_token")
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	cfg := &Config{
		Token:       token,
		Prefix:      envString("COMMAND_PREFIX", DefaultPrefix),
		MetricsAddr: envString("METRICS_ADDR", DefaultMetricsAddr),
		LogLevel:    envString("LOG_LEVEL", "info"),
		Suggestion: Suggestion{
			Description:       envString("SUGGEST_DESCRIPTION", DefaultDescription),
			UsageInstructions: envList("SUGGEST_USAGE", []string{":command <suggestion>"}),
			UsageExamples:     envList("SUGGEST_EXAMPLES", []string{":command Add a music channel where we can share songs"}),
			CooldownSeconds:   envInt("SUGGEST_COOLDOWN", 0),
			MinLength:         envInt("SUGGEST_MIN_LENGTH", DefaultMinLength),
			ChannelID:         envString("SUGGEST_CHANNEL_ID", ""),
			SuccessMessage:    envString("SUGGEST_SUCCESS_MESSAGE", DefaultSuccessMessage),
			YesEmote:          envString("SUGGEST_YES_EMOTE", ""),
			NoEmote:           envString("SUGGEST_NO_EMOTE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Cooldown returns the per-user cooldown of the suggest command.
func (s Suggestion) Cooldown() time.Duration {
	return time.Duration(s.CooldownSeconds) * time.Second
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// envList splits a semicolon separated value, dropping blank entries.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
