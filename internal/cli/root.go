// Package cli implements the uekit command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uekit/internal/logging"
	"github.com/goliatone/go-uekit/pkg/config"
	"github.com/goliatone/go-uekit/pkg/engine"
	"github.com/goliatone/go-uekit/pkg/panels"
	"github.com/goliatone/go-uekit/pkg/panels/builtin"
	"github.com/goliatone/go-uekit/pkg/renderers/tui"
)

// Option configures the command tree.
type Option func(*app)

// WithOutput redirects command output and status lines.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.out = out
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithClipboard replaces the system clipboard writer used by --copy.
func WithClipboard(write func(string) error) Option {
	return func(a *app) {
		if write != nil {
			a.copy = write
		}
	}
}

// WithPromptDriver replaces the survey driver used by the interactive command.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	templates  string
}

type app struct {
	out    io.Writer
	errOut io.Writer
	copy   func(string) error
	driver tui.PromptDriver

	flags    globalFlags
	cfg      config.Config
	logger   *slog.Logger
	registry *panels.Registry
}

// NewRootCommand builds the uekit command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
		copy:   clipboard.WriteAll,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	root := &cobra.Command{
		Use:           "uekit",
		Short:         "Unreal Engine helper tools",
		Long:          "Generate Unreal Engine C++ class skeletons, asset names, material snippets and performance reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.flags.logFormat, "log-format", "", "log format (text, json)")
	flags.StringVar(&a.flags.templates, "templates", "", "directory of template overrides")

	root.AddCommand(
		a.classCommand(),
		a.analyzeCommand(),
		a.nameCommand(),
		a.materialCommand(),
		a.kindsCommand(),
		a.serveCommand(),
		a.interactiveCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, options ...Option) int {
	root := NewRootCommand(options...)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return 130
		}
		errOut := root.ErrOrStderr()
		color.New(color.FgRed).Fprintf(errOut, "✗ %v\n", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if cmd.Flags().Changed("templates") {
		cfg.Templates.Dir = a.flags.templates
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Writer: a.errOut,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	eng, err := engine.New(engine.WithTemplateDir(cfg.Templates.Dir))
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	if cfg.Templates.Dir != "" {
		logger.Debug("using template overrides", slog.String("dir", cfg.Templates.Dir))
	}

	registry, err := builtin.NewRegistry(cmd.Context(), eng,
		builtin.WithFieldDefault(builtin.PanelMaterial, builtin.FieldBaseColor, cfg.Material.BaseColor),
		builtin.WithFieldDefault(builtin.PanelMaterial, builtin.FieldMetallic, cfg.Material.Metallic),
		builtin.WithFieldDefault(builtin.PanelMaterial, builtin.FieldRoughness, cfg.Material.Roughness),
	)
	if err != nil {
		return err
	}
	a.registry = registry
	return nil
}

// generate runs panelID and prints the output, copying it when requested.
func (a *app) generate(cmd *cobra.Command, panelID string, values panels.Values, copyOut bool) error {
	panel, err := a.registry.Get(panelID)
	if err != nil {
		return err
	}
	output := panel.Generate(values)
	a.logger.Debug("generated", slog.String("panel", panelID), slog.Int("bytes", len(output)))

	out := cmd.OutOrStdout()
	if _, err := io.WriteString(out, output); err != nil {
		return err
	}
	if !strings.HasSuffix(output, "\n") {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	if !copyOut {
		return nil
	}
	if err := a.copy(output); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	color.New(color.FgGreen).Fprintln(cmd.ErrOrStderr(), "✓ Copied to clipboard")
	return nil
}
