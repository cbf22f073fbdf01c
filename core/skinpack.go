package core

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// SkinPackName is the file name (without extension) of the resource pack managed by mcl
const SkinPackName = "MCL_Launcher_Skin"

// SkinPackDescription is shown under the pack in the in-game resource pack list
const SkinPackDescription = "Custom skin for MCL Launcher"

// ResourcePacksFolder is the folder in the game directory that the client loads resource packs from
const ResourcePacksFolder = "resourcepacks"

// Skin texture slots of the two default player models
var skinTextureFiles = []string{"steve.png", "alex.png"}

// Name of the folder created inside StagingDir to assemble the pack in
const stagingFolderName = "mcl-skin-staging"

var ErrSkinNotFound = errors.New("skin file not found")

var ErrNoStagingDir = errors.New("no staging folder set")

// PackMeta is the content of pack.mcmeta
type PackMeta struct {
	Pack struct {
		PackFormat  int    `json:"pack_format"`
		Description string `json:"description"`
	} `json:"pack"`
}

// SkinPack builds the skin resource pack for a game directory.
// Build only ever creates and removes its own folder inside StagingDir.
type SkinPack struct {
	GameDir    string
	StagingDir string
}

// NewSkinPack creates a SkinPack for gameDir, staging in the mcl cache unless stagingDir is given
func NewSkinPack(gameDir string, stagingDir string) (*SkinPack, error) {
	if len(stagingDir) == 0 {
		cacheDir, err := GetLocalCache()
		if err != nil {
			return nil, fmt.Errorf("failed to locate staging folder: %w", err)
		}
		stagingDir = cacheDir
	}
	return &SkinPack{GameDir: gameDir, StagingDir: stagingDir}, nil
}

// ArchivePath is where the pack archive is written; it doesn't depend on the skin or version
func (s *SkinPack) ArchivePath() string {
	return filepath.Join(s.GameDir, ResourcePacksFolder, SkinPackName+".zip")
}

// PackID is the identifier the game uses for the pack in options.txt
func (s *SkinPack) PackID() string {
	return "file/" + SkinPackName + ".zip"
}

// StagingPath is the folder the pack is assembled in, inside StagingDir
func (s *SkinPack) StagingPath() string {
	return filepath.Join(s.StagingDir, stagingFolderName)
}

// Build stages the skin pack for versionID and compresses it to ArchivePath.
// The staging folder never survives a call, whether or not it succeeds.
func (s *SkinPack) Build(skinPath string, versionID string) (err error) {
	if len(s.StagingDir) == 0 {
		return ErrNoStagingDir
	}
	staging := s.StagingPath()
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("failed to clear staging folder: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			logrus.Warnf("Failed to remove staging folder %s: %v", staging, rmErr)
			if err == nil {
				err = rmErr
			}
		}
	}()

	entityDir := filepath.Join(staging, "assets", "minecraft", "textures", "entity")
	if err = os.MkdirAll(entityDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging folder: %w", err)
	}

	packFormat := ResolvePackFormat(versionID)
	logrus.Debugf("Using pack format %d for version %q", packFormat, versionID)
	if err = writePackMeta(filepath.Join(staging, "pack.mcmeta"), packFormat); err != nil {
		return err
	}

	for _, name := range skinTextureFiles {
		if err = copyFile(skinPath, filepath.Join(entityDir, name)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrSkinNotFound, skinPath)
			}
			return fmt.Errorf("failed to copy skin: %w", err)
		}
	}

	if err = zipFolder(staging, s.ArchivePath()); err != nil {
		return fmt.Errorf("failed to write skin pack: %w", err)
	}
	logrus.Infof("Skin pack written to %s", s.ArchivePath())
	return nil
}

// Remove deletes the pack archive, if there is one
func (s *SkinPack) Remove() error {
	err := os.Remove(s.ArchivePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func writePackMeta(path string, packFormat int) error {
	meta := PackMeta{}
	meta.Pack.PackFormat = packFormat
	meta.Pack.Description = SkinPackDescription

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pack.mcmeta: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("failed to write pack.mcmeta: %w", err)
	}
	return f.Close()
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// zipFolder writes every file under folder into a zip at dest. Entries are added in lexical order without
// modification times, so the same folder contents always give the same archive bytes.
// The zip is assembled next to dest and renamed over it once complete.
func zipFolder(folder string, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}

	zw := zip.NewWriter(tmp)
	err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   filepath.ToSlash(rel),
			Method: zip.Deflate,
		})
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
