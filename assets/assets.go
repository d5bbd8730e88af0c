package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/profile"
)

var (
	//go:embed all:levels all:profiles all:audio
	embedded embed.FS

	// FS is where levels, profiles and audio are read from. main swaps it
	// for a directory on disk when -assets is given.
	FS fs.FS = embedded
)

const (
	LevelsDir   = "levels"
	ProfilesDir = "profiles"
)

func MustLoadLevels() []*leveldata.Level {
	levels, err := leveldata.LoadAll(FS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels
}

func MustLoadProfiles() []*profile.Profile {
	profiles, err := profile.LoadAll(FS, ProfilesDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load character profiles: %v", err))
	}
	return profiles
}
