package cmd

import (
	"fmt"
	"os"

	"github.com/mcl-launcher/mcl/cmdshared"
	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
)

// activateCmd represents the activate command
var activateCmd = &cobra.Command{
	Use:     "activate",
	Short:   "Enable the existing skin pack in options.txt, at the highest priority",
	Aliases: []string{"enable"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdshared.LoadSettings()
		pack, err := settings.SkinPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if _, err := os.Stat(pack.ArchivePath()); err != nil {
			fmt.Println("No skin pack found, run 'mcl skin' to create one!")
			os.Exit(1)
		}
		if err := core.ActivatePack(settings.GameDir, pack.PackID()); err != nil {
			fmt.Printf("Error enabling skin pack: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Skin pack enabled!")
	},
}

func init() {
	rootCmd.AddCommand(activateCmd)
}
