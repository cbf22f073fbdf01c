package core

import (
	"github.com/mitchellh/mapstructure"
)

// Settings are the options shared by every command, from flags, the environment or .mcl.toml
type Settings struct {
	GameDir        string `mapstructure:"game-dir"`
	StagingDir     string `mapstructure:"staging-dir"`
	NonInteractive bool   `mapstructure:"non-interactive"`
	Verbose        bool   `mapstructure:"verbose"`
}

// DecodeSettings reads Settings out of a map of config values (e.g. viper.AllSettings()).
// If no game directory is configured the official launcher's default is used.
func DecodeSettings(values map[string]interface{}) (Settings, error) {
	var settings Settings
	config := &mapstructure.DecoderConfig{
		Result:           &settings,
		WeaklyTypedInput: true,
	}
	dec, err := mapstructure.NewDecoder(config)
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Settings{}, err
	}
	if len(settings.GameDir) == 0 {
		settings.GameDir, err = DefaultGameDir()
		if err != nil {
			return Settings{}, err
		}
	}
	return settings, nil
}

// SkinPack creates the SkinPack for these settings
func (s Settings) SkinPack() (*SkinPack, error) {
	return NewSkinPack(s.GameDir, s.StagingDir)
}
