package cmdshared

import (
	"fmt"
	"os"

	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/viper"
)

// LoadSettings resolves the shared settings from viper, exiting if the game directory can't be found
func LoadSettings() core.Settings {
	settings, err := core.DecodeSettings(viper.AllSettings())
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}
	return settings
}

// LoadState loads the launcher state file, exiting on failure
func LoadState() core.State {
	path, err := core.GetStateFile()
	if err != nil {
		fmt.Printf("Error locating state file: %v\n", err)
		os.Exit(1)
	}
	state, err := core.LoadState(path)
	if err != nil {
		fmt.Printf("Error loading state file: %v\n", err)
		os.Exit(1)
	}
	return state
}
