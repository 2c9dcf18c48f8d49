package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"

	"github.com/hotfolder/hotfolder/internal/consts"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	c.applyArgs()

	if c.Version == "" {
		c.Version = "1"
	}

	if c.WatchDir == "" {
		var dir string
		dir, err = defaultDir(consts.DefaultWatchDir)
		if err != nil {
			return
		}

		c.WatchDir = WatchDir(dir)

		c.log.Infow("Watch directory not configured, use default.",
			"watch dir", c.WatchDir,
		)
	}

	c.WatchDir = WatchDir(expandHome(string(c.WatchDir)))
	c.MoveTo = MoveTo(expandHome(string(c.MoveTo)))

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.MoveTo == "" {
		c.log.Warnw("No destination configured, processed files stay in the watched directory.")
	}

	if string(c.MoveTo) == string(c.WatchDir) {
		err = ErrSameDirectory
		return
	}

	return
}

// applyArgs overrides file values with the positional arguments
// [watchPath] [moveToFolder] [printFlag]. The print flag enables
// printing only when it reads "print" or "true".
func (c *Config) applyArgs() {
	if len(c.args) > 0 && c.args[0] != "" {
		c.WatchDir = WatchDir(c.args[0])
	}

	if len(c.args) > 1 {
		c.MoveTo = MoveTo(c.args[1])
	}

	if len(c.args) > 2 {
		c.Print = strings.EqualFold(c.args[2], "print") ||
			strings.EqualFold(c.args[2], "true")
	}
}

func defaultDir(rel string) (ret string, err error) {
	defer Wrap(&err, "resolve default directory")

	var home string
	home, err = os.UserHomeDir()
	if err != nil {
		return
	}

	ret = filepath.Join(home, rel)
	return
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}
