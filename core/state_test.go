package core

import (
	"path/filepath"
	"testing"
)

func TestStateMissingFile(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "state.toml"))
	if err != nil {
		t.Fatalf("A missing state file should not be an error: %v", err)
	}
	if state.LastSkinPath != "" || state.LastVersion != "" {
		t.Errorf("Expected an empty state, got %+v", state)
	}
}

func TestStateWriteAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcl", "state.toml")
	state, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	state.LastSkinPath = "/home/steve/skin.png"
	state.LastVersion = "1.20.4"
	if err := state.Write(); err != nil {
		t.Fatalf("Failed to write state: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.LastSkinPath != state.LastSkinPath || loaded.LastVersion != state.LastVersion {
		t.Errorf("Expected %+v, got %+v", state, loaded)
	}

	if err := loaded.Remove(); err != nil {
		t.Fatal(err)
	}
	if err := loaded.Remove(); err != nil {
		t.Errorf("Removing a missing state file should not fail: %v", err)
	}
}

func TestDecodeSettings(t *testing.T) {
	settings, err := DecodeSettings(map[string]interface{}{
		"game-dir":        "/games/.minecraft",
		"non-interactive": "true",
		"skin":            map[string]interface{}{"version": "1.20.4"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if settings.GameDir != "/games/.minecraft" || !settings.NonInteractive {
		t.Errorf("Unexpected settings %+v", settings)
	}
	pack, err := settings.SkinPack()
	if err != nil {
		t.Fatal(err)
	}
	if pack.GameDir != settings.GameDir || pack.StagingDir == "" {
		t.Errorf("Unexpected skin pack %+v", pack)
	}
}
