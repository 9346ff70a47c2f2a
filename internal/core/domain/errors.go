package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput = errors.New("suggestion text is empty")
	ErrPostFailed = errors.New("failed to post suggestion")
)

type TooShortError struct {
	MinLength int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("suggestion shorter than %d characters", e.MinLength)
}

type ChannelNotFoundError struct {
	ChannelID string
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("suggestion channel %s not found", e.ChannelID)
}
