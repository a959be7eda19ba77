package encode

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/x86"
	"github.com/spf13/cobra"
)

var (
	gdtBase     uint32
	gdtLimit    uint32
	gdtType     uint8
	gdtDPL      uint8
	gdtSystem   bool
	gdtLong     bool
	gdtDB       bool
	gdtGranular bool
)

var gdtCmd = &cobra.Command{
	Use:   "gdt [value]",
	Short: "Encode or decode an x86_64 segment descriptor",
	Long: `Without an argument, packs a GDT segment descriptor from the flags.
With a hex argument, unpacks an existing descriptor word instead.

The conventional 64 bit kernel code entry, for reference:
  karch encode gdt --limit 0xFFFFF --type 0xA --long --granular`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var descriptor x86.SegmentDescriptor

		if len(args) == 1 {
			raw, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("bad descriptor value %q: %w", args[0], err)
			}
			descriptor = x86.SegmentDescriptor(raw)
		} else {
			descriptor = x86.NewSegmentDescriptor(x86.SegmentConfig{
				Base:     gdtBase,
				Limit:    gdtLimit,
				Type:     gdtType,
				User:     !gdtSystem,
				DPL:      gdtDPL,
				Long:     gdtLong,
				DB:       gdtDB,
				Granular: gdtGranular,
			})
		}

		color.New(color.FgWhite, color.Bold).Printf("descriptor: %#018x\n", uint64(descriptor))
		fmt.Printf("  base:     %#010x\n", descriptor.Base())
		fmt.Printf("  limit:    %#07x\n", descriptor.Limit())
		fmt.Printf("  type:     %#x\n", descriptor.Type())
		fmt.Printf("  dpl:      %d\n", descriptor.DPL())
		fmt.Printf("  present:  %v\n", descriptor.Present())
		fmt.Printf("  user:     %v\n", descriptor.User())
		fmt.Printf("  long:     %v\n", descriptor.Long())
		fmt.Printf("  granular: %v\n", descriptor.Granular())
		return nil
	},
}

func init() {
	EncodeCmd.AddCommand(gdtCmd)
	gdtCmd.Flags().Uint32Var(&gdtBase, "base", 0, "Segment base address")
	gdtCmd.Flags().Uint32Var(&gdtLimit, "limit", 0, "Segment limit, 20 bits")
	gdtCmd.Flags().Uint8Var(&gdtType, "type", 0, "4 bit type field (0xA code, 0x2 data)")
	gdtCmd.Flags().Uint8Var(&gdtDPL, "dpl", 0, "Descriptor privilege level")
	gdtCmd.Flags().BoolVar(&gdtSystem, "system", false, "System segment rather than code/data")
	gdtCmd.Flags().BoolVar(&gdtLong, "long", false, "64 bit code segment")
	gdtCmd.Flags().BoolVar(&gdtDB, "db", false, "Default operand size flag, off for long mode code")
	gdtCmd.Flags().BoolVar(&gdtGranular, "granular", false, "Limit counted in 4 KiB units")
}
