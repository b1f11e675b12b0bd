package panels

import "errors"

var (
	// ErrPanelNotFound is returned when a registry lookup misses.
	ErrPanelNotFound = errors.New("panels: panel not found")
	// ErrDuplicatePanel is returned when a panel ID is registered twice.
	ErrDuplicatePanel = errors.New("panels: panel already registered")
)
