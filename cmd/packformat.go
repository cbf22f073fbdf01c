package cmd

import (
	"fmt"

	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
)

// packFormatCmd represents the pack-format command
var packFormatCmd = &cobra.Command{
	Use:   "pack-format [version]",
	Short: "Show the resource pack format used for a Minecraft version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(core.ResolvePackFormat(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(packFormatCmd)
}
