package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagsel/tagsel/internal/cli"
	"github.com/tagsel/tagsel/pkg/models"
	"github.com/tagsel/tagsel/pkg/store"
)

// NewRowsCommand creates the rows command
func NewRowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "List the sheet's rows with their tags",
		Long: `List every row of the project sheet together with its tag names.

Examples:
  # List all rows
  tagsel rows`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, err := cli.NewCommandContext()
			if err == nil {
				err = ctx.ValidateProject()
			}
			if err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}

			sheetStore, err := store.NewSheetStore()
			if err != nil {
				cli.PrintError("failed to load sheet: %v", err)
				os.Exit(1)
			}

			sheet := sheetStore.Sheet()
			if len(sheet.Rows) == 0 {
				cli.PrintInfo("No rows in the sheet")
				return
			}

			names := make(map[string]string, len(sheet.Options))
			for _, opt := range sheet.Options {
				names[opt.ID] = opt.Name
			}

			for _, row := range sheet.Rows {
				tags := make([]string, 0, len(row.Tags))
				for _, id := range row.Tags {
					if name, ok := names[id]; ok {
						tags = append(tags, name)
					}
				}
				fmt.Printf("%-16s %-24s %s\n", row.ID, row.Title, strings.Join(tags, ", "))
			}
		},
	}

	return cmd
}

// NewOptionsCommand creates the options command
func NewOptionsCommand() *cobra.Command {
	var showUsage bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the sheet's select options",
		Long: `List every option of the sheet's tag column with its color,
optionally with the number of rows using it.

Examples:
  # List options
  tagsel options

  # Include per-option usage counts
  tagsel options --usage`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, err := cli.NewCommandContext()
			if err == nil {
				err = ctx.ValidateProject()
			}
			if err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}

			sheetStore, err := store.NewSheetStore()
			if err != nil {
				cli.PrintError("failed to load sheet: %v", err)
				os.Exit(1)
			}

			sheet := sheetStore.Sheet()
			if len(sheet.Options) == 0 {
				cli.PrintInfo("No options defined yet")
				return
			}

			usage := make(map[string]int)
			if showUsage {
				for _, row := range sheet.Rows {
					for _, id := range row.Tags {
						usage[id]++
					}
				}
			}

			for _, opt := range sheet.Options {
				color := models.GetOptionColor(opt.Name, opt.Color)
				if showUsage {
					fmt.Printf("%-24s %-8s %d row%s\n", opt.Name, color, usage[opt.ID], pluralS(usage[opt.ID]))
				} else {
					fmt.Printf("%-24s %s\n", opt.Name, color)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&showUsage, "usage", false, "show how many rows use each option")

	return cmd
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
