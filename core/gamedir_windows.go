package core

import (
	"os"

	"golang.org/x/sys/windows"
)

func getAppDataDir() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
	if err != nil {
		// Fall back to the environment, which is what the official launcher uses anyway
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return "", err
	}
	return path, nil
}
