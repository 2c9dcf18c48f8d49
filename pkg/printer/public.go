package printer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
)

// PrintFile submits the original document at path to the spooler.
func (p *Printer) PrintFile(ctx context.Context, path string) (err error) {
	defer Wrap(&err, "print original document")

	err = p.runner(ctx, p.spoolCmd, path)
	if err != nil {
		return
	}

	p.log.Infow("Print job submitted.",
		"path", path,
	)

	return
}

// PrintText renders text into a temporary spool file and submits
// that. The spool file is removed after a grace delay so the spooler
// has time to pick it up; cleanup failures are ignored.
func (p *Printer) PrintText(ctx context.Context, name string, text string) (err error) {
	defer Wrap(&err, "print text content")

	var spool *os.File
	spool, err = os.CreateTemp("", "hotfolder-*-"+filepath.Base(name)+".txt")
	if err != nil {
		return
	}

	spoolPath := spool.Name()

	_, err = spool.WriteString(text)
	if closeErr := spool.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(spoolPath)
		return
	}

	defer time.AfterFunc(p.cleanupDelay, func() {
		_ = os.Remove(spoolPath)
	})

	err = p.runner(ctx, p.spoolCmd, spoolPath)
	if err != nil {
		return
	}

	p.log.Infow("Print job submitted.",
		"name", name,
		"spool", spoolPath,
	)

	return
}
