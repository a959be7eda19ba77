package catalog

import (
	"sort"

	"github.com/osdev-kit/karch/pkg/hw/arm64"
	"github.com/osdev-kit/karch/pkg/hw/regs"
	"github.com/osdev-kit/karch/pkg/hw/riscv"
	"github.com/osdev-kit/karch/pkg/hw/x86"
	"github.com/osdev-kit/karch/pkg/utils"
	"github.com/spf13/cobra"
)

// CatalogCmd represents the catalog command
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the register descriptor catalogs",
}

var catalogs = map[string]*regs.Catalog{
	"x86":   x86.Descriptors,
	"arm64": arm64.Descriptors,
	"riscv": riscv.Descriptors,
}

func archNames() []string {
	names := utils.Keys(catalogs)
	sort.Strings(names)
	return names
}
