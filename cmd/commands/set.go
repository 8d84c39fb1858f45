package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagsel/tagsel/internal/cli"
	"github.com/tagsel/tagsel/pkg/editor"
	"github.com/tagsel/tagsel/pkg/models"
	"github.com/tagsel/tagsel/pkg/store"
)

var (
	setAppend    bool
	setCreateRow bool
	setQuiet     bool
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <row-id> <tags>",
		Short: "Set a row's tags from the command line",
		Long: `Replace a row's tags with the given comma-separated list.

Tag names that match existing options (case-insensitive) select those
options; unknown names create new options, exactly as typing them in the
interactive editor would.

Examples:
  # Replace the tags of row "r1"
  tagsel set r1 urgent,backend

  # Add tags, keeping the current ones
  tagsel set r1 "needs review" --append

  # Create the row first if it does not exist
  tagsel set r7 frontend --create`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cli.SetQuiet(setQuiet)

			ctx, err := cli.NewCommandContext()
			if err == nil {
				err = ctx.ValidateProject()
			}
			if err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}

			if err := runSet(args[0], args[1]); err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&setAppend, "append", false, "keep the row's current tags")
	cmd.Flags().BoolVar(&setCreateRow, "create", false, "create the row if it does not exist")
	cmd.Flags().BoolVarP(&setQuiet, "quiet", "q", false, "suppress success output")

	return cmd
}

// runSet drives one editor session headlessly: seed from the row, apply
// the requested tags as intent events, commit on close.
func runSet(rowID, tagList string) error {
	sheetStore, err := store.NewSheetStore()
	if err != nil {
		return err
	}

	row, ok := sheetStore.Row(rowID)
	if !ok {
		if !setCreateRow {
			return fmt.Errorf("row '%s' not found (use --create to add it)", rowID)
		}
		row = models.Row{ID: rowID, Title: rowID}
		sheetStore.AddRow(row)
	}

	sheet := sheetStore.Sheet()

	ctrl := editor.New(editor.Config{
		Gateway:    store.NewCellGateway(sheetStore, rowID),
		CommitMode: editor.CommitOnClose,
	})
	ctrl.Apply(editor.Initial{Options: sheet.Options, Selected: row.Tags})

	if !setAppend {
		for _, id := range ctrl.State().SelectedIDs() {
			ctrl.Apply(editor.SelectOption{ID: id})
		}
	}

	for _, name := range strings.Split(tagList, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ctrl.Apply(editor.NewOption{Text: name})
	}

	final := ctrl.Close()

	cli.PrintSuccess("Row %s now has %d tag%s: %s",
		rowID, len(final.SelectedOptions), pluralS(len(final.SelectedOptions)),
		strings.Join(final.SelectedNames(), ", "))

	return nil
}
