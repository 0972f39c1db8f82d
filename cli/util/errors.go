package util

import "errors"

var (
	// ErrCmdAbort is returned when the operator interrupts an interactive prompt.
	ErrCmdAbort = errors.New("aborted by user")
)
