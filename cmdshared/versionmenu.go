package cmdshared

import (
	"errors"

	"github.com/mcl-launcher/mcl/core"
	"gopkg.in/dixonwille/wmenu.v4"
)

var ErrCancelled = errors.New("cancelled")

// ChooseVersion asks the user to pick one of the installed versions of gameDir.
// preferred is selected by default if it's installed, otherwise the newest version is.
func ChooseVersion(gameDir string, preferred string) (string, error) {
	installed, err := core.InstalledVersions(gameDir)
	if err != nil {
		return "", err
	}
	if len(installed) == 0 {
		return "", errors.New("no installed versions found, install one with your launcher or pass --version")
	}

	defaultIdx := 0
	for i, v := range installed {
		if v == preferred {
			defaultIdx = i
		}
	}

	var chosen string
	menu := wmenu.NewMenu("Choose a version:")
	for i, v := range installed {
		menu.Option(v, v, i == defaultIdx, nil)
	}
	menu.Option("Cancel", nil, false, nil)
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return ErrCancelled
		}
		v, ok := menuRes[0].Value.(string)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		chosen = v
		return nil
	})
	if err := menu.Run(); err != nil {
		return "", err
	}
	return chosen, nil
}
