package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoPanels is returned when there is nothing to choose from.
	ErrNoPanels = errors.New("tui: no panels registered")
)
