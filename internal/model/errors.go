package model

import "fmt"

var (
	// ErrInvalidMessage rejects an append with empty content, a missing
	// sender or a malformed target. Never retried.
	ErrInvalidMessage = fmt.Errorf("invalid message")

	// ErrNotFound reports a reference to a message that does not exist.
	ErrNotFound = fmt.Errorf("message not found")

	// ErrGroupNotFound reports a target group that no longer exists in the
	// roster service.
	ErrGroupNotFound = fmt.Errorf("group not found")
)
