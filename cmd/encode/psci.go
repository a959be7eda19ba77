package encode

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/arm64"
	"github.com/osdev-kit/karch/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	psciLevel   uint8
	psciType    string
	psciStateID uint16
)

var psciCmd = &cobra.Command{
	Use:   "psci [value]",
	Short: "Encode or decode a PSCI CPU_SUSPEND power state",
	Long: `Without an argument, packs a PSCI power_state parameter from --level,
--type and --state-id. With a hex or decimal argument, unpacks an existing
power_state value instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var state arm64.PowerState

		if len(args) == 1 {
			raw, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("bad power state value %q: %w", args[0], err)
			}
			state = arm64.PowerState(raw)
		} else {
			var powerDown bool
			switch psciType {
			case "standby":
			case "powerdown":
				powerDown = true
			default:
				return fmt.Errorf("bad state type %q, expected standby or powerdown", psciType)
			}
			state = arm64.NewPowerState(psciLevel, powerDown, psciStateID)
		}

		color.New(color.FgWhite, color.Bold).Printf("power_state: %#010x\n", uint32(state))
		fmt.Printf("  binary:       %s\n", utils.FormatUintBinary(uint64(state), 32))
		fmt.Printf("  power level:  %d\n", state.PowerLevel())
		fmt.Printf("  power down:   %v\n", state.PowerDown())
		fmt.Printf("  state id:     %#06x\n", state.StateID())
		fmt.Printf("    core:       %#x\n", state.CoreState())
		fmt.Printf("    cluster:    %#x\n", state.ClusterState())
		fmt.Printf("    system:     %#x\n", state.SystemState())
		return nil
	},
}

func init() {
	EncodeCmd.AddCommand(psciCmd)
	psciCmd.Flags().Uint8Var(&psciLevel, "level", 0, "Deepest affinity level affected (0 core, 1 cluster, 2 system)")
	psciCmd.Flags().StringVar(&psciType, "type", "standby", "State type (standby|powerdown)")
	psciCmd.Flags().Uint16Var(&psciStateID, "state-id", 0, "Platform defined state id")
}
