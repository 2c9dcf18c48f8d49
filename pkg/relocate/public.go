package relocate

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
)

// Relocate moves the file at path into the destination directory
// under its original name, or under a timestamped name when that
// would overwrite an existing file. The move is a single rename, so
// it either fully happens or the source stays in place.
func (r *Relocator) Relocate(path string, name string) (err error) {
	defer Wrap(&err, "relocate file")

	if r.dest == "" {
		r.log.Debugw("No destination configured, leave file in place.",
			"path", path,
		)
		return
	}

	err = os.MkdirAll(r.dest, 0o755)
	if err != nil {
		return
	}

	target := filepath.Join(r.dest, name)
	if _, statErr := os.Stat(target); statErr == nil {
		target = filepath.Join(r.dest, r.collisionName(name))
	}

	err = os.Rename(path, target)
	if err != nil {
		return
	}

	r.log.Infow("File relocated.",
		"from", path,
		"to", target,
	)

	return
}

// collisionName inserts a filename-safe wall clock timestamp between
// base name and extension: report.txt -> report_2026-08-24_13-05-07.txt
func (r *Relocator) collisionName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	stamp := r.now().Format("2006-01-02_15-04-05")

	return base + "_" + stamp + ext
}
