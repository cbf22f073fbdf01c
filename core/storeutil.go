package core

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetLocalStore returns the folder mcl keeps its own data in
func GetLocalStore() (string, error) {
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "linux" {
		// Prefer $XDG_DATA_HOME over the config folder
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome != "" {
			return filepath.Join(dataHome, "mcl"), nil
		}
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "mcl"), nil
}

// GetLocalCache returns the folder mcl keeps temporary files in
func GetLocalCache() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, "mcl"), nil
}

// GetStateFile returns the path of the launcher state file
func GetStateFile() (string, error) {
	localStore, err := GetLocalStore()
	if err != nil {
		return "", err
	}
	return filepath.Join(localStore, "state.toml"), nil
}
