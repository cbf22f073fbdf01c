package core

import (
	"os"
	"path/filepath"
	"testing"
)

const testPackID = "file/MCL_Launcher_Skin.zip"

func writeOptions(t *testing.T, dir string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, OptionsFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readOptions(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, OptionsFileName))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func activateAndCompare(t *testing.T, input string, expected string) {
	t.Helper()
	dir := t.TempDir()
	writeOptions(t, dir, input)
	if err := ActivatePack(dir, testPackID); err != nil {
		t.Fatalf("ActivatePack failed: %v", err)
	}
	if got := readOptions(t, dir); got != expected {
		t.Errorf("Unexpected options.txt\nexpected: %q\ngot:      %q", expected, got)
	}
}

func TestActivateCreatesOptions(t *testing.T) {
	dir := t.TempDir()
	if err := ActivatePack(dir, testPackID); err != nil {
		t.Fatalf("ActivatePack failed: %v", err)
	}
	expected := "resourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\n"
	if got := readOptions(t, dir); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestActivatePrependsPack(t *testing.T) {
	activateAndCompare(t,
		"resourcePacks:[\"file/OtherPack.zip\"]\n",
		"resourcePacks:[\"file/MCL_Launcher_Skin.zip\",\"file/OtherPack.zip\"]\n")
}

func TestActivateMovesPackToFront(t *testing.T) {
	activateAndCompare(t,
		"version:3700\nresourcePacks:[\"vanilla\",\"file/MCL_Launcher_Skin.zip\",\"file/A.zip\",\"file/MCL_Launcher_Skin.zip\"]\nfov:0.0\n",
		"version:3700\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\",\"vanilla\",\"file/A.zip\"]\nfov:0.0\n")
}

func TestActivatePreservesOtherLines(t *testing.T) {
	input := "version:3700\nautoJump:false\nlang:en_us\nincompatibleResourcePacks:[]\nresourcePacks:[\"fabric\",\"file/B & C.zip\"]\nkey_key.jump:key.keyboard.space\n"
	expected := "version:3700\nautoJump:false\nlang:en_us\nincompatibleResourcePacks:[]\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\",\"fabric\",\"file/B & C.zip\"]\nkey_key.jump:key.keyboard.space\n"
	activateAndCompare(t, input, expected)
}

func TestActivateAppendsMissingLine(t *testing.T) {
	activateAndCompare(t,
		"version:3700\nlang:en_us\n",
		"version:3700\nlang:en_us\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\n")
}

func TestActivateNoTrailingNewline(t *testing.T) {
	activateAndCompare(t,
		"version:3700\nlang:en_us",
		"version:3700\nlang:en_us\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\n")
}

func TestActivateEmptyFile(t *testing.T) {
	activateAndCompare(t, "", "resourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\n")
}

func TestActivateKeepsCRLF(t *testing.T) {
	activateAndCompare(t,
		"version:3700\r\nresourcePacks:[\"file/OtherPack.zip\"]\r\nlang:en_us\r\n",
		"version:3700\r\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\",\"file/OtherPack.zip\"]\r\nlang:en_us\r\n")
}

func TestActivateCorruptList(t *testing.T) {
	activateAndCompare(t,
		"version:3700\nresourcePacks:[\"file/Other\nlang:en_us\n",
		"version:3700\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\nlang:en_us\n")
}

func TestActivateNullList(t *testing.T) {
	activateAndCompare(t,
		"resourcePacks:null\n",
		"resourcePacks:[\"file/MCL_Launcher_Skin.zip\"]\n")
}

func TestActivateIsIdempotent(t *testing.T) {
	for _, input := range []string{
		"resourcePacks:[\"file/OtherPack.zip\"]\n",
		"version:3700\nlang:en_us",
		"a:b\r\nresourcePacks:[]\r\n",
		"",
	} {
		dir := t.TempDir()
		writeOptions(t, dir, input)
		if err := ActivatePack(dir, testPackID); err != nil {
			t.Fatal(err)
		}
		first := readOptions(t, dir)
		if err := ActivatePack(dir, testPackID); err != nil {
			t.Fatal(err)
		}
		if second := readOptions(t, dir); second != first {
			t.Errorf("Activating twice changed options.txt (input %q)\nfirst:  %q\nsecond: %q", input, first, second)
		}
	}
}

func TestActivateKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	writeOptions(t, dir, "lang:en_us\n")
	if err := os.Chmod(filepath.Join(dir, OptionsFileName), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := ActivatePack(dir, testPackID); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(dir, OptionsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("Expected mode 0640, got %v", info.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected no temporary files to be left, found %d entries", len(entries))
	}
}

func TestDeactivatePack(t *testing.T) {
	dir := t.TempDir()
	writeOptions(t, dir, "lang:en_us\nresourcePacks:[\"file/MCL_Launcher_Skin.zip\",\"file/OtherPack.zip\"]\n")
	if err := DeactivatePack(dir, testPackID); err != nil {
		t.Fatal(err)
	}
	expected := "lang:en_us\nresourcePacks:[\"file/OtherPack.zip\"]\n"
	if got := readOptions(t, dir); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	if err := DeactivatePack(t.TempDir(), testPackID); err != nil {
		t.Errorf("Deactivating without an options.txt should not fail: %v", err)
	}
}

func TestResourcePacks(t *testing.T) {
	dir := t.TempDir()
	writeOptions(t, dir, "lang:en_us\nresourcePacks: [\"vanilla\", \"file/A.zip\"]\n")
	opts, err := LoadOptionsFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	packs, found, err := opts.ResourcePacks()
	if err != nil || !found {
		t.Fatalf("Expected to find the resource pack list (found %v, err %v)", found, err)
	}
	if len(packs) != 2 || packs[0] != "vanilla" || packs[1] != "file/A.zip" {
		t.Errorf("Unexpected packs %v", packs)
	}
}
