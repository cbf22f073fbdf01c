package core

import (
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	MsgSkinUpdated    = "Offline skin updated successfully!"
	MsgMissingInput   = "Skin path or version ID is missing."
	MsgSkinNotFound   = "Skin file could not be found."
	MsgProcessFailure = "Error processing skin."
)

// ProcessSkin builds the skin pack and, only if that worked, enables it in options.txt.
// The message is meant for users; the underlying error is only logged.
// Failing to enable the pack is logged but doesn't fail the call, since the pack is already on disk
// and can be enabled in game or by running activation again.
func ProcessSkin(pack *SkinPack, skinPath string, versionID string) (bool, string) {
	if len(skinPath) == 0 || len(versionID) == 0 {
		return false, MsgMissingInput
	}

	if err := pack.Build(skinPath, versionID); err != nil {
		logrus.Errorf("Error creating skin pack: %v", err)
		if errors.Is(err, ErrSkinNotFound) {
			return false, MsgSkinNotFound
		}
		return false, MsgProcessFailure
	}

	if err := ActivatePack(pack.GameDir, pack.PackID()); err != nil {
		logrus.Warnf("Could not enable the skin pack: %v", err)
	}
	return true, MsgSkinUpdated
}
