package types

// FileEvent describes a regular file that newly appeared in the
// watched directory. One event is emitted per appearance; events are
// not retained after the processing pipeline picked them up.
type FileEvent struct {
	// Path is the absolute path of the file inside the watched
	// directory.
	Path string
	// Name is the base name of the file.
	Name string
}
