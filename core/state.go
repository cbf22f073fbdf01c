package core

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// State stores what mcl remembers between runs, in state.toml
type State struct {
	LastSkinPath string `toml:"last-skin-path,omitempty"`
	LastVersion  string `toml:"last-version,omitempty"`
	path         string
}

// LoadState loads the state file at path. A missing file gives an empty State.
func LoadState(path string) (State, error) {
	var state State
	if _, err := toml.DecodeFile(path, &state); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return State{path: path}, err
	}
	state.path = path
	return state, nil
}

// Write saves the state file
func (s State) Write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	// Disable indentation
	enc.Indent = ""
	if err := enc.Encode(s); err != nil {
		return err
	}
	return f.Close()
}

// Remove deletes the state file
func (s State) Remove() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
