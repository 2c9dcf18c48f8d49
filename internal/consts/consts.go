package consts

import "time"

const (
	CheckDocumentString = `
Go to check the documentation
https://pkg.go.dev/github.com/hotfolder/hotfolder
for some help.
`

	HotfolderCfgPath = "/etc/hotfolder/config.yaml"

	// Relative to the user home directory.
	DefaultWatchDir = "Documents/hotfolder/in"
	DefaultMoveTo   = "Documents/hotfolder/done"

	// SettleDelay is how long a newly appeared file is left alone
	// before the pipeline reads it. Best effort against
	// partially-written files, not a correctness guarantee.
	SettleDelay = 500 * time.Millisecond

	// SpoolCleanupDelay is how long a temporary print spool file is
	// kept around after the job was submitted.
	SpoolCleanupDelay = 10 * time.Second
)
