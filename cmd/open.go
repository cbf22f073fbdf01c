package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcl-launcher/mcl/cmdshared"
	"github.com/mcl-launcher/mcl/core"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:       "open [game|resourcepacks]",
	Short:     "Open the game directory or its resource pack folder in your file browser",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"game", "resourcepacks"},
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdshared.LoadSettings()
		dir := settings.GameDir
		if len(args) > 0 {
			switch args[0] {
			case "game":
			case "resourcepacks":
				dir = filepath.Join(settings.GameDir, core.ResourcePacksFolder)
			default:
				fmt.Printf("Unknown folder %q, must be game or resourcepacks\n", args[0])
				os.Exit(1)
			}
		}
		if _, err := os.Stat(dir); err != nil {
			fmt.Printf("Directory '%s' not found.\n", filepath.Base(dir))
			os.Exit(1)
		}
		fmt.Printf("Opening '%s'...\n", filepath.Base(dir))
		if err := open.Start(dir); err != nil {
			fmt.Printf("Opening folder failed: %v\nIt is located at %s\n", err, dir)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
