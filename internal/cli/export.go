package cli

import (
	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp()
			if err != nil {
				return err
			}
			defer app.Stop()

			opts.output.PrintHeader("infraguide export")
			report, err := app.Export(cmd.Context(), outDir)
			if err != nil {
				return err
			}
			opts.output.RenderExportReport(report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist-site", "output directory")
	return cmd
}
