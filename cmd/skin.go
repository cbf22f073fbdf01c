package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcl-launcher/mcl/cmdshared"
	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skinCmd represents the skin command
var skinCmd = &cobra.Command{
	Use:   "skin [file]",
	Short: "Use a skin image for the default player models, through a resource pack",
	Long: `Build a resource pack replacing the Steve and Alex textures with the given skin, and enable it in options.txt.
Without a file, the last skin used is applied again (e.g. for a different game version).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdshared.LoadSettings()
		state := cmdshared.LoadState()

		skinPath := state.LastSkinPath
		if len(args) > 0 {
			skinPath = args[0]
		}
		if len(skinPath) == 0 {
			fmt.Println("You must specify a skin file.")
			os.Exit(1)
		}
		if absPath, err := filepath.Abs(skinPath); err == nil {
			skinPath = absPath
		}

		version := viper.GetString("skin.version")
		if len(version) == 0 {
			if settings.NonInteractive {
				version = state.LastVersion
			} else {
				var err error
				version, err = cmdshared.ChooseVersion(settings.GameDir, state.LastVersion)
				if errors.Is(err, cmdshared.ErrCancelled) {
					fmt.Println("Cancelled!")
					return
				}
				if err != nil {
					fmt.Printf("Error choosing version: %v\n", err)
					os.Exit(1)
				}
			}
		}
		version = core.StripVersionDecoration(version)

		if err := core.EnsureGameDir(settings.GameDir); err != nil {
			fmt.Printf("Error creating game directory: %v\n", err)
			os.Exit(1)
		}
		pack, err := settings.SkinPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ok, msg := core.ProcessSkin(pack, skinPath, version)
		fmt.Println(msg)
		if !ok {
			os.Exit(1)
		}

		state.LastSkinPath = skinPath
		state.LastVersion = version
		if err := state.Write(); err != nil {
			fmt.Printf("Warning: failed to save state: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(skinCmd)

	skinCmd.Flags().StringP("version", "v", "", "The Minecraft version the skin pack is for")
	_ = viper.BindPFlag("skin.version", skinCmd.Flags().Lookup("version"))
}
