package interfaces

// Relocator moves a processed file into the destination directory,
// resolving name collisions deterministically.
type Relocator interface {
	Relocate(path string, name string) error
}
