package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tagsel/tagsel/cmd/commands"
	"github.com/tagsel/tagsel/internal/cli"
	"github.com/tagsel/tagsel/pkg/store"
	"github.com/tagsel/tagsel/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tagsel",
	Short: "Terminal tool for tagging rows of a tabular sheet",
	Long:  `Tagsel manages a small tabular sheet whose tag column is edited through a multi-select dropdown: pick existing options, type to create new ones, rename or delete them. Everything is stored as plain YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(store.TagselDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", store.TagselDir)
			fmt.Fprintf(os.Stderr, "Please run 'tagsel init' first to initialize a new project.\n")
			os.Exit(1)
		}

		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Tagsel project",
	Long:  `Creates the .tagsel folder with a starter sheet and default settings in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Tagsel project in %s...\n", cwd)

		if err := store.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .tagsel folder")
		fmt.Println("\nRun 'tagsel' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tagsel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tagsel version %s\n", version)
	},
}

var noColor bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output symbols")
	cobra.OnInitialize(func() {
		cli.SetNoColor(noColor)
	})

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewRowsCommand())
	rootCmd.AddCommand(commands.NewOptionsCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
