package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uekit/pkg/model"
)

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List asset kinds with their prefixes and folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"Kind", "Prefix", "Folder"})
			for _, kind := range model.AssetKinds() {
				table.Append([]string{kind.String(), kind.Prefix(), "Content/" + kind.Folder() + "/"})
			}
			table.Render()
			return nil
		},
	}
}
