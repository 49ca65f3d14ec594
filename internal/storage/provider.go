// Package storage defines the site file-system abstraction.
package storage

// Provider is the interface for reading posts and writing generated
// pages. All paths are relative to the site root.
type Provider interface {
	// ReadDir returns the file names in dir, in directory order. It
	// does not recurse.
	ReadDir(dir string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent
	// directories as needed.
	Write(path string, content []byte) error
}
