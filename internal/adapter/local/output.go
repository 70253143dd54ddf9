package local

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
)

// OutputWriter writes export artifacts below a single output directory.
type OutputWriter struct {
	dir string
}

// NewOutputWriter creates the output directory tree and returns a writer
// rooted at it.
func NewOutputWriter(dir string) (interfaces.OutputWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}
	for _, sub := range []string{"firestore", "auth", "storage", "realtime_db"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create output subdirectory", goerr.V("dir", sub))
		}
	}
	return &OutputWriter{dir: dir}, nil
}

// WriteJSON atomically writes v as indented JSON at relPath.
func (w *OutputWriter) WriteJSON(relPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal JSON output", goerr.V("path", relPath))
	}

	path := filepath.Join(w.dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("path", path))
	}
	if err := writeFileAtomic(path, data); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", path))
	}

	return nil
}

// ReadJSON reads a previously written artifact, for merging resumed output.
func (w *OutputWriter) ReadJSON(relPath string, v any) error {
	data, err := os.ReadFile(filepath.Join(w.dir, relPath))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse output file", goerr.V("path", relPath))
	}
	return nil
}

// CreateFile creates a regular file for streamed content.
func (w *OutputWriter) CreateFile(relPath string) (io.WriteCloser, string, error) {
	path := filepath.Join(w.dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", goerr.Wrap(err, "failed to create output directory", goerr.V("path", path))
	}
	f, err := os.Create(path) // #nosec G304 - path is derived from the configured output dir
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	return f, path, nil
}

// Dir returns the absolute output directory.
func (w *OutputWriter) Dir() string {
	return w.dir
}

// writeFileAtomic writes data to a sibling temp file and renames it into
// place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
