package encode

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/x86"
	"github.com/spf13/cobra"
)

var (
	idtOffset   uint64
	idtSelector uint16
	idtIST      uint8
	idtTrap     bool
	idtDPL      uint8
)

var idtCmd = &cobra.Command{
	Use:   "idt",
	Short: "Encode a long mode IDT gate descriptor",
	Long: `Packs a 16 byte long mode interrupt or trap gate from the handler offset,
code segment selector, IST slot and privilege level, and prints both 64 bit
words with a field breakdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gateType := x86.GateTypeInterrupt
		if idtTrap {
			gateType = x86.GateTypeTrap
		}

		gate := x86.NewGateDescriptor(x86.GateConfig{
			Offset:   idtOffset,
			Selector: idtSelector,
			IST:      idtIST,
			Type:     gateType,
			DPL:      idtDPL,
		})

		color.New(color.FgWhite, color.Bold).Printf("gate: %#018x %#018x\n", gate.High, gate.Low)
		fmt.Printf("  offset:   %#018x\n", gate.Offset())
		fmt.Printf("  selector: %#06x\n", gate.Selector())
		fmt.Printf("  ist:      %d\n", gate.IST())
		fmt.Printf("  type:     %#x\n", gate.Type())
		fmt.Printf("  dpl:      %d\n", gate.DPL())
		fmt.Printf("  present:  %v\n", gate.Present())
		return nil
	},
}

func init() {
	EncodeCmd.AddCommand(idtCmd)
	idtCmd.Flags().Uint64Var(&idtOffset, "offset", 0, "Handler virtual address")
	idtCmd.Flags().Uint16Var(&idtSelector, "selector", 0x08, "Code segment selector")
	idtCmd.Flags().Uint8Var(&idtIST, "ist", 0, "Interrupt stack table slot (0 = legacy stack switch)")
	idtCmd.Flags().BoolVar(&idtTrap, "trap", false, "Trap gate (interrupts stay enabled) rather than interrupt gate")
	idtCmd.Flags().Uint8Var(&idtDPL, "dpl", 0, "Privilege level allowed to invoke the gate with int")
}
