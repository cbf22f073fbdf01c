package core

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/unascribed/FlexVer/go/flexver"
)

// VersionManifestURL lists every version of the game
const VersionManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

const VersionTypeRelease = "release"

type McVersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []McVersion `json:"versions"`
}

type McVersion struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Time        time.Time `json:"time"`
	ReleaseTime time.Time `json:"releaseTime"`
}

// GetMCVersionManifest downloads the version manifest, sorted from newest to oldest
func GetMCVersionManifest() (McVersionManifest, error) {
	res, err := GetWithUA(VersionManifestURL, "application/json")
	if err != nil {
		return McVersionManifest{}, err
	}
	defer res.Body.Close()

	dec := json.NewDecoder(res.Body)
	out := McVersionManifest{}
	err = dec.Decode(&out)
	if err != nil {
		return McVersionManifest{}, err
	}
	sort.SliceStable(out.Versions, func(i, j int) bool {
		return out.Versions[i].ReleaseTime.After(out.Versions[j].ReleaseTime)
	})
	return out, nil
}

// InstalledVersions lists the versions in the versions folder of gameDir, newest first.
// A version counts as installed when its folder has a matching .json file.
func InstalledVersions(gameDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(gameDir, "versions"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	installed := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(gameDir, "versions", entry.Name(), entry.Name()+".json")); err == nil {
			installed = append(installed, entry.Name())
		}
	}
	flexver.VersionSlice(installed).Sort()
	slices.Reverse(installed)
	return installed, nil
}

// DisplayVersions gives the version IDs to show to the user, marking installed ones with InstalledSuffix.
// Only releases are included unless snapshots is set.
func DisplayVersions(manifest McVersionManifest, installed []string, snapshots bool) []string {
	display := make([]string, 0, len(manifest.Versions))
	for _, v := range manifest.Versions {
		if v.Type != VersionTypeRelease && !snapshots {
			continue
		}
		if slices.Contains(installed, v.ID) {
			display = append(display, v.ID+InstalledSuffix)
		} else {
			display = append(display, v.ID)
		}
	}
	return display
}

// FilterVersions fuzzy matches query against versions, best match first
func FilterVersions(versions []string, query string) []string {
	matches := fuzzy.Find(query, versions)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
