package catalog

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the declaration invariants of every catalog",
	Long: `Runs the declaration validator over the catalogs of all architectures:
legal register widths, non-zero field widths, fields contained within their
register, no overlapping bit ranges, unique field names, and no field
capability broader than its register's.

The library panics on these violations at startup; this command surfaces
them as a non-zero exit instead, for use in CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range archNames() {
			if err := catalogs[name].Validate(); err != nil {
				color.New(color.FgRed, color.Bold).Printf("%s: FAIL\n", name)
				return err
			}

			slog.Debug("catalog validated", "arch", name, "registers", len(catalogs[name].Registers))
			color.New(color.FgGreen).Printf("%s: ok\n", name)
		}

		return nil
	},
}

func init() {
	CatalogCmd.AddCommand(validateCmd)
}
