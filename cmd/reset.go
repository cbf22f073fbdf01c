package cmd

import (
	"fmt"
	"os"

	"github.com/mcl-launcher/mcl/cmdshared"
	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the skin pack and everything mcl remembers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdshared.LoadSettings()
		state := cmdshared.LoadState()
		pack, err := settings.SkinPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if !cmdshared.PromptYesNo("This will delete the skin pack and forget the last skin used. Continue? [Y/n] ") {
			fmt.Println("Cancelled!")
			return
		}

		failed := false
		if err := state.Remove(); err != nil {
			fmt.Printf("Error deleting state file: %v\n", err)
			failed = true
		}
		if err := core.DeactivatePack(settings.GameDir, pack.PackID()); err != nil {
			fmt.Printf("Error disabling skin pack: %v\n", err)
			failed = true
		}
		if err := pack.Remove(); err != nil {
			fmt.Printf("Error deleting skin pack: %v\n", err)
			failed = true
		}
		if failed {
			os.Exit(1)
		}
		fmt.Println("All mcl data deleted.")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
