//go:build !amd64

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var cpuidCmd = &cobra.Command{
	Use:   "cpuid",
	Short: "Query the processor identification of this host",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("cpuid is unsupported on this host (%s)", runtime.GOARCH)
	},
}
