package cmd

import (
	"fmt"
	"os"

	"github.com/mcl-launcher/mcl/cmdshared"
	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions [query]",
	Short: "List Minecraft versions, marking the ones installed in the game directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdshared.LoadSettings()
		installed, err := core.InstalledVersions(settings.GameDir)
		if err != nil {
			fmt.Printf("Error reading installed versions: %v\n", err)
			os.Exit(1)
		}

		var versions []string
		if viper.GetBool("versions.installed") {
			versions = installed
		} else {
			manifest, err := core.GetMCVersionManifest()
			if err != nil {
				fmt.Printf("Failed to get Minecraft versions: %v\n", err)
				os.Exit(1)
			}
			versions = core.DisplayVersions(manifest, installed, viper.GetBool("versions.snapshots"))
		}

		if len(args) > 0 {
			versions = core.FilterVersions(versions, args[0])
		}
		if len(versions) == 0 {
			fmt.Println("No versions found.")
			return
		}
		for _, v := range versions {
			fmt.Println(v)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.Flags().BoolP("snapshots", "s", false, "Include snapshots and other non-release versions")
	_ = viper.BindPFlag("versions.snapshots", versionsCmd.Flags().Lookup("snapshots"))
	versionsCmd.Flags().BoolP("installed", "i", false, "Only list installed versions (doesn't need an internet connection)")
	_ = viper.BindPFlag("versions.installed", versionsCmd.Flags().Lookup("installed"))
}
