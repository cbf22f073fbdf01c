package core

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultGameDir finds the standard .minecraft folder of the official launcher for this OS
func DefaultGameDir() (string, error) {
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "windows" {
		appData, err := getAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appData, ".minecraft"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "minecraft"), nil
	}
	return filepath.Join(home, ".minecraft"), nil
}

// EnsureGameDir creates the game directory and its resource pack folder if needed
func EnsureGameDir(gameDir string) error {
	return os.MkdirAll(filepath.Join(gameDir, ResourcePacksFolder), 0o755)
}
