package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMissingUserID  = errors.New("user id is required")
	ErrUnknownAction  = errors.New("unknown lifecycle action")
	ErrMissingMessage = errors.New("message is required")
	ErrSenderNotReady = errors.New("direct sender is not configured")
)
