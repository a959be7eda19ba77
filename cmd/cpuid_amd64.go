package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/x86"
	"github.com/spf13/cobra"
)

var (
	cpuidLeaf    uint32
	cpuidSubleaf uint32
	cpuidRaw     bool
)

var cpuidCmd = &cobra.Command{
	Use:   "cpuid",
	Short: "Query the processor identification of this host",
	Long: `Runs CPUID on the host processor. Without flags it prints a summary:
vendor, brand, topology and the documented leaf 1 feature bits. With
--leaf/--subleaf it prints the raw words of one leaf.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cpuidRaw || cmd.Flags().Changed("leaf") {
			eax, ebx, ecx, edx := x86.ExecuteCpuid(cpuidLeaf, cpuidSubleaf)
			fmt.Printf("leaf %#x subleaf %#x: eax=%#010x ebx=%#010x ecx=%#010x edx=%#010x\n",
				cpuidLeaf, cpuidSubleaf, eax, ebx, ecx, edx)
			return nil
		}

		bold := color.New(color.FgWhite, color.Bold)
		bold.Printf("vendor: ")
		fmt.Println(x86.VendorString())
		bold.Printf("brand:  ")
		fmt.Println(x86.BrandString())

		fmt.Printf("max leaf: %#x, max extended leaf: %#x\n", x86.MaxLeaf(), x86.MaxExtendedLeaf())
		fmt.Printf("apic id: %d, logical processors: %d, smt shift: %d, core shift: %d\n",
			x86.APICID(), x86.LogicalProcessorCount(), x86.SMTShift(), x86.CoreShift())

		supported := color.New(color.FgGreen)
		missing := color.New(color.FgHiBlack)
		bold.Println("features:")
		for _, feature := range []x86.Feature{
			x86.FeatureFPU, x86.FeatureTSC, x86.FeatureMSR, x86.FeaturePAE,
			x86.FeatureAPIC, x86.FeaturePGE, x86.FeaturePAT, x86.FeatureSSE,
			x86.FeatureSSE2, x86.FeatureSSE3, x86.FeatureSSSE3, x86.FeatureSSE41,
			x86.FeatureSSE42, x86.FeatureFMA, x86.FeaturePCID, x86.FeatureX2APIC,
			x86.FeatureXSAVE, x86.FeatureAVX, x86.FeatureRDRAND, x86.FeatureVMX,
		} {
			if feature.Supported() {
				supported.Printf("  %s\n", feature)
			} else {
				missing.Printf("  %s (absent)\n", feature)
			}
		}

		return nil
	},
}

func init() {
	cpuidCmd.Flags().Uint32Var(&cpuidLeaf, "leaf", 0, "Leaf to query (eax input)")
	cpuidCmd.Flags().Uint32Var(&cpuidSubleaf, "subleaf", 0, "Subleaf to query (ecx input)")
	cpuidCmd.Flags().BoolVar(&cpuidRaw, "raw", false, "Print the raw words of --leaf/--subleaf")
}
