package tui

import (
	"io"

	"github.com/goliatone/go-uekit/pkg/panels"
)

// Theme captures optional prefixes the runner applies to printed messages.
type Theme struct {
	OutputHeader string
	InfoPrefix   string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints output.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithPrefill seeds prompt defaults for a panel, taking precedence over the
// descriptor defaults.
func WithPrefill(panelID string, values panels.Values) Option {
	return func(r *Runner) {
		if panelID == "" || len(values) == 0 {
			return
		}
		if r.prefill == nil {
			r.prefill = make(map[string]panels.Values)
		}
		r.prefill[panelID] = values.Normalize()
	}
}
