package config

import "go.uber.org/zap"

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// WatchDir is the directory watched for new files.
	// Leave empty to use the per-user default
	// (~/Documents/hotfolder/in); a leading ~/ is expanded.
	WatchDir WatchDir `yaml:"watch-dir"`
	// MoveTo is where processed files are relocated to.
	// Leave empty to keep processed files in the watched directory.
	MoveTo MoveTo `yaml:"move-to"`
	// Print submits every processed file to the host print system.
	Print bool `yaml:"print"`

	log  *zap.SugaredLogger `yaml:"-"`
	raw  []byte
	args []string
}

type WatchDir string

type MoveTo string
