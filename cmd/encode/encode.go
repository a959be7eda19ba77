package encode

import (
	"github.com/spf13/cobra"
)

// EncodeCmd represents the encode command
var EncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build and break down packed hardware words",
	Long: `Encoders for the packed words the library builds at run time: GDT segment
descriptors, long mode IDT gates, PSCI power states and PIT divisors. Each
command prints the encoded word plus a field by field breakdown, so the
values can be checked against the architecture manuals.`,
}
