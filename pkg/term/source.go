package term

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source is the file-reading capability used by the import resolver and the
// render entrypoint. Path resolution stays with the caller; a Source only
// reads.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// OSSource reads pages from the local filesystem.
type OSSource struct{}

func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FSSource reads pages from an fs.FS, e.g. an embed.FS or a test fixture.
// Paths are slash-cleaned and stripped of any leading separator so that the
// resolver's absolute-style paths map onto fs.FS rooted paths.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) ReadFile(path string) ([]byte, error) {
	name := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	return fs.ReadFile(s.FS, name)
}
