package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uekit/pkg/panels/builtin"
	"github.com/goliatone/go-uekit/pkg/renderers/tui"
)

func (a *app) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "interactive [panel]",
		Aliases:   []string{"i"},
		Short:     "Fill in a tool from terminal prompts",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{builtin.PanelClassSkeleton, builtin.PanelPerformance, builtin.PanelAssetName, builtin.PanelMaterial},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithTheme(tui.Theme{OutputHeader: color.New(color.FgCyan, color.Bold).Sprint("Output:")}),
			)

			err := a.runInteractive(cmd, runner, args)
			if errors.Is(err, tui.ErrAborted) {
				color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "Aborted")
			}
			return err
		},
	}
}

func (a *app) runInteractive(cmd *cobra.Command, runner *tui.Runner, args []string) error {
	if len(args) == 0 {
		return runner.Loop(cmd.Context(), a.registry)
	}
	panel, err := a.registry.Get(args[0])
	if err != nil {
		return err
	}
	_, err = runner.Run(cmd.Context(), panel)
	return err
}
