package utils

import (
	"github.com/mcl-launcher/mcl/cmd"
	"github.com/spf13/cobra"
)

// utilsCmd groups the commands that aren't about skins: shell completion and docs
var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Shell completion and command reference for mcl",
}

func init() {
	cmd.Add(utilsCmd)
}
