package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Token validation
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// Prefix validation
	maxPrefixLength = 5

	// Cooldown validation
	maxCooldownSeconds = 86400

	// MinLength validation
	maxMinLength = 2000 // Discord message content limit

	// Success message validation
	maxSuccessMessageLength = 2000
)

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join for better user experience.
//
// Validated fields:
//   - Token: Must be at least 50 characters (Discord token format)
//   - Prefix: Must be 1-5 characters without whitespace
//   - Suggestion.ChannelID: Must be a Discord snowflake
//   - Suggestion.CooldownSeconds: Must be between 0 and 86400
//   - Suggestion.MinLength: Must be between 0 and 2000
//   - Suggestion.SuccessMessage: Must be at most 2000 characters
//
// Emote references are not validated here, a missing emote only means no reaction.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePrefix(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Suggestion.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

// validateToken ensures the Discord token is present and has valid length
func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validatePrefix() error {
	if c.Prefix == "" {
		return fmt.Errorf("COMMAND_PREFIX cannot be empty")
	}

	if len(c.Prefix) > maxPrefixLength {
		return fmt.Errorf("COMMAND_PREFIX must be at most %d characters, got %d", maxPrefixLength, len(c.Prefix))
	}

	if strings.ContainsAny(c.Prefix, " \t\n") {
		return fmt.Errorf("COMMAND_PREFIX cannot contain whitespace")
	}

	return nil
}

func (s *Suggestion) validate() error {
	var errs []error

	if err := validateSnowflake("SUGGEST_CHANNEL_ID", s.ChannelID); err != nil {
		errs = append(errs, err)
	}

	if s.CooldownSeconds < 0 || s.CooldownSeconds > maxCooldownSeconds {
		errs = append(errs, fmt.Errorf(
			"SUGGEST_COOLDOWN must be between 0 and %d seconds, got %d",
			maxCooldownSeconds, s.CooldownSeconds,
		))
	}

	if s.MinLength < 0 || s.MinLength > maxMinLength {
		errs = append(errs, fmt.Errorf(
			"SUGGEST_MIN_LENGTH must be between 0 and %d, got %d (hint: suggestions longer than %d characters cannot be sent)",
			maxMinLength, s.MinLength, maxMinLength,
		))
	}

	if n := utf8.RuneCountInString(s.SuccessMessage); n > maxSuccessMessageLength {
		errs = append(errs, fmt.Errorf(
			"SUGGEST_SUCCESS_MESSAGE must be at most %d characters, got %d",
			maxSuccessMessageLength, n,
		))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// validateSnowflake checks that id is a numeric Discord identifier
func validateSnowflake(fieldName, id string) error {
	if id == "" {
		return fmt.Errorf("%s is required but not set", fieldName)
	}

	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return fmt.Errorf("%s must be a numeric Discord ID, got %q", fieldName, id)
	}

	return nil
}
