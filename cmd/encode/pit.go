package encode

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/x86"
	"github.com/spf13/cobra"
)

var pitHz uint32

var pitCmd = &cobra.Command{
	Use:   "pit",
	Short: "Compute the 8254 divisor for a tick frequency",
	Long: `Computes the channel 0 reload value producing the requested output
frequency from the 1.19318 MHz input clock, along with the frequency the
divisor actually yields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pitHz == 0 {
			return fmt.Errorf("--hz must be at least 1")
		}

		divisor := x86.PITDivisor(pitHz)

		actual := float64(x86.PITBaseFrequency)
		if divisor != 0 {
			actual /= float64(divisor)
		} else {
			actual /= 65536
		}

		color.New(color.FgWhite, color.Bold).Printf("divisor: %d (%#04x)\n", divisor, divisor)
		fmt.Printf("  requested: %d Hz\n", pitHz)
		fmt.Printf("  actual:    %.3f Hz\n", actual)
		fmt.Printf("  program:   outb 0x43, 0x36; outb 0x40, %#02x; outb 0x40, %#02x\n",
			uint8(divisor), uint8(divisor>>8))
		return nil
	},
}

func init() {
	EncodeCmd.AddCommand(pitCmd)
	pitCmd.Flags().Uint32Var(&pitHz, "hz", 100, "Desired tick frequency in Hz")
}
