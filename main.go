package main

import (
	"github.com/mcl-launcher/mcl/cmd"

	// Modules of mcl
	_ "github.com/mcl-launcher/mcl/utils"
)

func main() {
	cmd.Execute()
}
