// Package tui drives panels from a terminal. Each field becomes a prompt and
// the panel output is printed through the prompt driver.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-uekit/pkg/panels"
)

// Runner prompts for panel fields and prints generated output.
type Runner struct {
	driver  PromptDriver
	out     io.Writer
	theme   Theme
	prefill map[string]panels.Values
}

// New constructs a Runner with defaults (survey driver on stdout).
func New(options ...Option) *Runner {
	r := &Runner{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r
}

// Name reports the runner identifier.
func (r *Runner) Name() string {
	return "tui"
}

// Collect prompts for every field of desc in order.
func (r *Runner) Collect(ctx context.Context, desc panels.Descriptor) (panels.Values, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	prefill := r.prefill[desc.ID]
	values := make(panels.Values, len(desc.Fields))
	for _, field := range desc.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current, ok := prefill[field.Name]
		if !ok {
			current = field.Default
		}
		value, err := r.promptField(ctx, field, current)
		if err != nil {
			return nil, fmt.Errorf("tui: field %q: %w", field.Name, err)
		}
		values[field.Name] = value
	}
	return values, nil
}

// Run collects values for panel, generates its output and prints it.
func (r *Runner) Run(ctx context.Context, panel panels.Panel) (string, error) {
	values, err := r.Collect(ctx, panel.Descriptor)
	if err != nil {
		return "", err
	}
	output := panel.Generate(values)
	if r.theme.OutputHeader != "" {
		if err := r.driver.Info(ctx, r.theme.OutputHeader); err != nil {
			return "", err
		}
	}
	if err := r.driver.Info(ctx, output); err != nil {
		return "", err
	}
	return output, nil
}

// Choose asks which registered panel to run.
func (r *Runner) Choose(ctx context.Context, reg *panels.Registry) (panels.Panel, error) {
	list := reg.List()
	if len(list) == 0 {
		return panels.Panel{}, ErrNoPanels
	}
	options := make([]string, len(list))
	for i, panel := range list {
		options[i] = panel.Title
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: "Choose a tool:",
		Options: options,
	})
	if err != nil {
		return panels.Panel{}, err
	}
	if idx < 0 || idx >= len(list) {
		return panels.Panel{}, fmt.Errorf("tui: invalid panel selection %d", idx)
	}
	return list[idx], nil
}

// Loop repeatedly chooses and runs panels until the user declines to
// continue. Aborting a prompt ends the loop with ErrAborted.
func (r *Runner) Loop(ctx context.Context, reg *panels.Registry) error {
	for {
		panel, err := r.Choose(ctx, reg)
		if err != nil {
			return err
		}
		if _, err := r.Run(ctx, panel); err != nil {
			return err
		}
		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Generate something else?", Default: true})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (r *Runner) promptField(ctx context.Context, field panels.Field, current string) (string, error) {
	message := r.theme.InfoPrefix + fieldLabel(field) + ":"
	if field.Kind == panels.FieldKindSelect && len(field.Options) > 0 {
		defaultIdx := indexOf(field.Options, current)
		if defaultIdx < 0 {
			defaultIdx = 0
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Options,
			DefaultIndex: defaultIdx,
			Help:         field.Description,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Options) {
			return current, nil
		}
		return field.Options[idx], nil
	}

	cfg := InputConfig{
		Message: message,
		Default: current,
		Help:    fieldHelp(field),
	}
	if field.Kind == panels.FieldKindNumber || field.Kind == panels.FieldKindRange {
		cfg.Validator = numericValidator
	}
	return r.driver.Input(ctx, cfg)
}

func fieldLabel(field panels.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func fieldHelp(field panels.Field) string {
	parts := make([]string, 0, 2)
	if field.Description != "" {
		parts = append(parts, field.Description)
	}
	if field.Placeholder != "" {
		parts = append(parts, "e.g. "+field.Placeholder)
	}
	if field.Min != "" && field.Max != "" {
		parts = append(parts, fmt.Sprintf("range %s to %s", field.Min, field.Max))
	}
	return strings.Join(parts, "; ")
}

// numericValidator accepts blank input, which the generators treat as 0.
func numericValidator(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	return nil
}
