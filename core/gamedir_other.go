//go:build !windows

package core

import "errors"

// Stub version, so that getAppDataDir exists
func getAppDataDir() (string, error) {
	return "", errors.New("not compiled for windows")
}
