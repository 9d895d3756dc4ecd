package entities

import "errors"

// Domain errors
var (
	// Validation errors
	ErrTopicTooShort = errors.New("topic must not be empty and must have at least 5 characters")
	ErrEmptyProposal = errors.New("proposal text must not be empty")

	// Meeting errors
	ErrNoActiveMeeting = errors.New("no active brainstorming meeting")
)

// IsValidationError reports whether err is caused by bad user input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTopicTooShort) || errors.Is(err, ErrEmptyProposal)
}
