package interfaces

// Hotfolder is the assembled daemon.
type Hotfolder interface {
	Run() error
	Stop(cause error)
}
