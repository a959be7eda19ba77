package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/osdev-kit/karch/pkg/hw/regs"
	"github.com/osdev-kit/karch/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dumpArch   string
	dumpFormat string
)

var (
	colorRegister = color.New(color.FgWhite, color.Bold, color.Underline)
	colorField    = color.New(color.FgGreen)
	colorBits     = color.New(color.FgCyan)
	colorAccess   = color.New(color.FgYellow)
	colorEnum     = color.New(color.FgHiBlack)
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a register descriptor catalog",
	Long: `Dumps the descriptor catalog of one architecture: every register with its
width and capability, every named field with its bit range, and the named
values of enumerated fields.

The table format includes an ascii bit layout diagram per register; the yaml
format is machine readable and stable for diffing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, found := catalogs[dumpArch]
		if !found {
			return fmt.Errorf("unknown architecture %q, expected one of: %v",
				dumpArch, strings.Join(archNames(), ", "))
		}

		switch dumpFormat {
		case "table":
			return dumpTable(selected)
		case "yaml":
			return dumpYaml(selected)
		default:
			return fmt.Errorf("unknown format %q, expected table or yaml", dumpFormat)
		}
	},
}

func init() {
	CatalogCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpArch, "arch", "a", "x86", "Architecture catalog to dump ("+strings.Join(archNames(), "|")+")")
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "table", "Output format (table|yaml)")
}

func dumpTable(c *regs.Catalog) error {
	slog.Debug("dumping catalog", "arch", c.Arch, "registers", len(c.Registers))

	for _, register := range c.Registers {
		colorRegister.Printf("%s", register.Name)
		fmt.Printf("  %d bits, %s\n", register.Width, colorAccess.Sprint(register.Access))

		fields := sortedFields(register)
		for _, field := range fields {
			fmt.Printf("  %s  %s  %s  %s%s\n",
				colorBits.Sprintf("[%2d:%2d]", field.Offset+field.Width-1, field.Offset),
				colorField.Sprintf("%-12s", field.Name),
				colorBits.Sprint(utils.FormatUintHex(field.Mask(), int(register.Width)/4)),
				colorAccess.Sprint(field.Access),
				enumSummary(field))
		}

		if diagram := registerDiagram(register); diagram != "" {
			fmt.Println(diagram)
		}

		fmt.Println()
	}

	return nil
}

func enumSummary(field *regs.FieldDescriptor) string {
	if len(field.Enum) == 0 {
		return ""
	}

	values := make([]uint64, 0, len(field.Enum))
	for value := range field.Enum {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	names := utils.Map(values, func(value uint64) string {
		return fmt.Sprintf("%d=%s", value, field.Enum[value])
	})
	return colorEnum.Sprintf("  {%s}", utils.FormatSlice(names, ", "))
}

// registerDiagram renders a right-to-left bit layout frame of the register's
// fields, or "" for registers without named fields.
func registerDiagram(register *regs.RegisterDescriptor) string {
	if len(register.Fields) == 0 {
		return ""
	}

	fields := utils.Map(register.Fields, func(field regs.FieldDescriptor) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  field.Name,
			Begin: int(field.Offset),
			Width: int(field.Width),
		}
	})

	diagram, err := utils.AsciiFrame(fields, int(register.Width), "bits", utils.AsciiFrameUnitLayout_RightToLeft, 2)
	if err != nil {
		slog.Debug("skipping bit diagram", "register", register.Name, "error", err)
		return ""
	}

	return diagram
}

// yaml export mirrors the descriptor model field for field.
type yamlField struct {
	Name   string            `yaml:"name"`
	Offset uint8             `yaml:"offset"`
	Width  uint8             `yaml:"width"`
	Access string            `yaml:"access"`
	Enum   map[uint64]string `yaml:"enum,omitempty"`
}

type yamlRegister struct {
	Name   string      `yaml:"name"`
	Width  uint8       `yaml:"width"`
	Access string      `yaml:"access"`
	Fields []yamlField `yaml:"fields,omitempty"`
}

type yamlCatalog struct {
	Arch      string         `yaml:"arch"`
	Registers []yamlRegister `yaml:"registers"`
}

func dumpYaml(c *regs.Catalog) error {
	export := yamlCatalog{
		Arch: c.Arch,
		Registers: utils.Map(c.Registers, func(register *regs.RegisterDescriptor) yamlRegister {
			return yamlRegister{
				Name:   register.Name,
				Width:  register.Width,
				Access: register.Access.String(),
				Fields: utils.Map(sortedFields(register), func(field *regs.FieldDescriptor) yamlField {
					return yamlField{
						Name:   field.Name,
						Offset: field.Offset,
						Width:  field.Width,
						Access: field.Access.String(),
						Enum:   field.Enum,
					}
				}),
			}
		}),
	}

	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(&export)
}

func sortedFields(register *regs.RegisterDescriptor) []*regs.FieldDescriptor {
	fields := make([]*regs.FieldDescriptor, len(register.Fields))
	for i := range register.Fields {
		fields[i] = &register.Fields[i]
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Offset < fields[j].Offset })
	return fields
}
