package filecheck

import (
	"io/fs"
	"os"
)

// Stater abstracts file system stat operations for testability.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealStater implements Stater using the actual file system.
type RealStater struct{}

// Stat returns file info for the given path.
func (r *RealStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
