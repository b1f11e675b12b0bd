package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uekit/pkg/panels"
	"github.com/goliatone/go-uekit/pkg/panels/builtin"
)

func (a *app) classCommand() *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "class NAME",
		Short: "Generate an AActor header and source skeleton",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, builtin.PanelClassSkeleton, panels.Values{
				builtin.FieldClassName: strings.Join(args, ""),
			}, copyOut)
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the output to the clipboard")
	return cmd
}

func (a *app) analyzeCommand() *cobra.Command {
	var copyOut bool
	var fps, drawCalls, triangles string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report performance tiers and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, builtin.PanelPerformance, panels.Values{
				builtin.FieldFPS:       fps,
				builtin.FieldDrawCalls: drawCalls,
				builtin.FieldTriangles: triangles,
			}, copyOut)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&fps, "fps", "", "frames per second")
	flags.StringVar(&drawCalls, "draw-calls", "", "draw calls per frame")
	flags.StringVar(&triangles, "triangles", "", "triangle count")
	flags.BoolVar(&copyOut, "copy", false, "also copy the output to the clipboard")
	return cmd
}

func (a *app) nameCommand() *cobra.Command {
	var copyOut bool
	var kind string
	cmd := &cobra.Command{
		Use:   "name NAME",
		Short: "Format an asset name with its type prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := panels.Values{builtin.FieldAssetName: strings.Join(args, "")}
			if cmd.Flags().Changed("kind") {
				values[builtin.FieldAssetType] = kind
			}
			return a.generate(cmd, builtin.PanelAssetName, values, copyOut)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "asset kind (see `uekit kinds`), default Blueprint")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the output to the clipboard")
	return cmd
}

func (a *app) materialCommand() *cobra.Command {
	var copyOut bool
	var baseColor, metallic, roughness string
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Generate a dynamic material helper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := panels.Values{}
			flags := cmd.Flags()
			if flags.Changed("color") {
				values[builtin.FieldBaseColor] = baseColor
			}
			if flags.Changed("metallic") {
				values[builtin.FieldMetallic] = metallic
			}
			if flags.Changed("roughness") {
				values[builtin.FieldRoughness] = roughness
			}
			return a.generate(cmd, builtin.PanelMaterial, values, copyOut)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&baseColor, "color", "", "base color as #RRGGBB (default from config)")
	flags.StringVar(&metallic, "metallic", "", "metallic value 0-1 (default from config)")
	flags.StringVar(&roughness, "roughness", "", "roughness value 0-1 (default from config)")
	flags.BoolVar(&copyOut, "copy", false, "also copy the output to the clipboard")
	return cmd
}
