package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/osdev-kit/karch/pkg/hw/regs"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var browseArch string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a register catalog interactively",
	Long: `Opens a terminal browser over one architecture's descriptor catalog: a
register list on the left, the selected register's fields on the right.

Keys: arrows/jk to move, tab to switch panes, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, found := catalogs[browseArch]
		if !found {
			return fmt.Errorf("unknown architecture %q, expected one of: %v",
				browseArch, strings.Join(archNames(), ", "))
		}

		return browse(selected)
	},
}

func init() {
	CatalogCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseArch, "arch", "a", "x86", "Architecture catalog to browse ("+strings.Join(archNames(), "|")+")")
}

func browse(c *regs.Catalog) error {
	app := tview.NewApplication()

	fields := tview.NewTable()
	fields.SetBorder(true).SetTitle(" fields ")

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" %s registers ", c.Arch))

	for _, register := range c.Registers {
		list.AddItem(register.Name, "", 0, nil)
	}

	list.SetChangedFunc(func(index int, name string, secondary string, shortcut rune) {
		showFields(fields, c.Registers[index])
	})

	if len(c.Registers) > 0 {
		showFields(fields, c.Registers[0])
	}

	layout := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(fields, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(fields)
			} else {
				app.SetFocus(list)
			}
			return nil
		case event.Rune() == 'q':
			app.Stop()
			return nil
		}

		return event
	})

	return app.SetRoot(layout, true).Run()
}

func showFields(table *tview.Table, register *regs.RegisterDescriptor) {
	table.Clear()
	table.SetTitle(fmt.Sprintf(" %s  %d bits, %s ", register.Name, register.Width, register.Access))

	for column, header := range []string{"bits", "name", "access", "values"} {
		table.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	fields := sortedFields(register)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Offset > fields[j].Offset })

	for row, field := range fields {
		table.SetCell(row+1, 0, tview.NewTableCell(fmt.Sprintf("[%d:%d]", field.Offset+field.Width-1, field.Offset)).
			SetTextColor(tcell.ColorAqua))
		table.SetCell(row+1, 1, tview.NewTableCell(field.Name).
			SetTextColor(tcell.ColorGreen))
		table.SetCell(row+1, 2, tview.NewTableCell(field.Access.String()))
		table.SetCell(row+1, 3, tview.NewTableCell(enumCell(field)))
	}

	table.SetSelectable(len(fields) > 0, false)
}

func enumCell(field *regs.FieldDescriptor) string {
	if len(field.Enum) == 0 {
		return ""
	}

	values := make([]uint64, 0, len(field.Enum))
	for value := range field.Enum {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%d=%s", value, field.Enum[value]))
	}
	return strings.Join(parts, " ")
}
