// Package envfile loads the raw contents of dotenv-style files. It
// returns file content verbatim and never parses key/value pairs or
// touches the process environment.
package envfile

import (
	"fmt"
	"io"

	"github.com/vertti/envread/pkg/handle"
)

// DefaultPath is the file read when no path is given, resolved against
// the process working directory.
const DefaultPath = ".env"

// Loader reads the entire content of one env file. Each call opens its
// own handle; nothing is cached between calls.
type Loader struct {
	Path string    // file to read; DefaultPath when empty
	Diag io.Writer // sink for open diagnostics; os.Stderr when nil
}

// ReadAll reads the whole file and returns it as a string, byte-exact
// including trailing newlines and byte-order marks. An unreadable file
// is an error (errors.Is against fs.ErrNotExist / fs.ErrPermission
// works); an empty file is a successful empty string. Nothing is
// written to Diag on this path.
func (l *Loader) ReadAll() (string, error) {
	h := &handle.Handle{Path: l.path(), Diag: io.Discard}
	if err := h.Open(); err != nil {
		return "", err
	}

	f := h.Take()
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", l.path(), err)
	}
	return string(data), nil
}

// LoadAll reads the whole file, degrading every failure to an empty
// string. The only failure signal is the handle's single "unable to
// open" line on Diag, so a missing file and an empty file both come
// back as "". Callers that need to tell the two apart use ReadAll.
func (l *Loader) LoadAll() string {
	h := &handle.Handle{Path: l.path(), Diag: l.Diag}
	if err := h.Open(); err != nil {
		return ""
	}

	f := h.Take()
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return ""
	}
	return string(data)
}

// Load reads ".env" from the current working directory.
func Load() string {
	return (&Loader{}).LoadAll()
}

func (l *Loader) path() string {
	if l.Path == "" {
		return DefaultPath
	}
	return l.Path
}
