package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// OptionsFileName is the game client's settings file, in the root of the game directory
const OptionsFileName = "options.txt"

const resourcePacksKey = "resourcePacks"

// OptionsFile holds the lines of options.txt. Lines keep their original bytes apart from the
// trailing "\n", so a CRLF file keeps its "\r" on every line that isn't rewritten.
type OptionsFile struct {
	Path  string
	Lines []string
	// TrailingNewline records whether the last line ended with "\n"
	TrailingNewline bool
}

// LoadOptionsFile reads options.txt from gameDir
func LoadOptionsFile(gameDir string) (OptionsFile, error) {
	opts := OptionsFile{Path: filepath.Join(gameDir, OptionsFileName)}
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return opts, err
	}
	if len(data) == 0 {
		return opts, nil
	}
	text := string(data)
	opts.TrailingNewline = strings.HasSuffix(text, "\n")
	opts.Lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return opts, nil
}

// ResourcePacks finds the first resourcePacks line and decodes its value
func (o OptionsFile) ResourcePacks() ([]string, bool, error) {
	for _, line := range o.Lines {
		if value, ok := resourcePacksValue(line); ok {
			packs, err := decodePackList(value)
			return packs, true, err
		}
	}
	return nil, false, nil
}

// PrependPack moves packID to the front of every resourcePacks line (highest priority), adding the line if there isn't one
func (o *OptionsFile) PrependPack(packID string) {
	found := o.updatePackLines(func(packs []string) []string {
		packs = slices.DeleteFunc(packs, func(p string) bool { return p == packID })
		return slices.Insert(packs, 0, packID)
	})
	if !found {
		newLine := formatPackLine([]string{packID})
		if len(o.Lines) > 0 && strings.HasSuffix(o.Lines[len(o.Lines)-1], "\r") {
			newLine += "\r"
		}
		o.Lines = append(o.Lines, newLine)
		o.TrailingNewline = true
	}
}

// RemovePack removes packID from every resourcePacks line
func (o *OptionsFile) RemovePack(packID string) {
	o.updatePackLines(func(packs []string) []string {
		return slices.DeleteFunc(packs, func(p string) bool { return p == packID })
	})
}

func (o *OptionsFile) updatePackLines(update func(packs []string) []string) bool {
	found := false
	for i, line := range o.Lines {
		value, ok := resourcePacksValue(line)
		if !ok {
			continue
		}
		found = true
		packs, err := decodePackList(value)
		if err != nil {
			logrus.Warnf("The %s line in %s is not a valid list, replacing it: %v", resourcePacksKey, o.Path, err)
			packs = []string{}
		}
		newLine := formatPackLine(update(packs))
		// Keep the line ending the file already uses
		if strings.HasSuffix(line, "\r") {
			newLine += "\r"
		}
		o.Lines[i] = newLine
	}
	return found
}

// Write replaces options.txt with the current lines. The content goes to a temporary file first,
// so the existing file is never left half written.
func (o OptionsFile) Write() error {
	var buf bytes.Buffer
	for i, line := range o.Lines {
		buf.WriteString(line)
		if i < len(o.Lines)-1 || o.TrailingNewline {
			buf.WriteByte('\n')
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(o.Path), OptionsFileName+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(o.Path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, o.Path)
}

// ActivatePack puts packID first in the resource pack list of options.txt in gameDir, creating the file if it doesn't exist.
// Calling it again with the same packID doesn't change the file.
func ActivatePack(gameDir string, packID string) error {
	opts, err := LoadOptionsFile(gameDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", OptionsFileName, err)
		}
		logrus.Debugf("%s not found, creating it", opts.Path)
	}
	opts.PrependPack(packID)
	if err := opts.Write(); err != nil {
		return fmt.Errorf("failed to write %s: %w", OptionsFileName, err)
	}
	logrus.Infof("Resource pack %s enabled in %s", packID, opts.Path)
	return nil
}

// DeactivatePack removes packID from the resource pack list of options.txt in gameDir.
// A missing options.txt is not an error.
func DeactivatePack(gameDir string, packID string) error {
	opts, err := LoadOptionsFile(gameDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", OptionsFileName, err)
	}
	opts.RemovePack(packID)
	if err := opts.Write(); err != nil {
		return fmt.Errorf("failed to write %s: %w", OptionsFileName, err)
	}
	return nil
}

func resourcePacksValue(line string) (string, bool) {
	key, value, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(key) != resourcePacksKey {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func decodePackList(value string) ([]string, error) {
	var packs []string
	if err := json.Unmarshal([]byte(value), &packs); err != nil {
		return nil, err
	}
	if packs == nil {
		packs = []string{}
	}
	return packs, nil
}

func formatPackLine(packs []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Pack names are file names, not HTML
	enc.SetEscapeHTML(false)
	if packs == nil {
		packs = []string{}
	}
	// Encoding a string slice can't fail
	_ = enc.Encode(packs)
	return resourcePacksKey + ":" + strings.TrimSuffix(buf.String(), "\n")
}
