package interfaces

import (
	"io"

	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

// CheckpointStore persists export progress so an interrupted run can
// resume without redoing completed work.
type CheckpointStore interface {
	// Load returns the persisted checkpoint, or an empty one if none
	// exists. A checkpoint file that exists but cannot be parsed is an
	// error, never silently replaced.
	Load() (*model.Checkpoint, error)

	// Save atomically writes the full current state.
	Save(checkpoint *model.Checkpoint) error

	// Clear removes the checkpoint. Called only after every domain export
	// has completed without error. Absence is not an error.
	Clear() error
}

// OutputWriter writes export artifacts into the local output directory.
type OutputWriter interface {
	// WriteJSON atomically writes v as indented JSON at a relative path.
	WriteJSON(relPath string, v any) error

	// ReadJSON reads a previously written JSON artifact into v. Returns
	// os.ErrNotExist (wrapped) when the artifact does not exist.
	ReadJSON(relPath string, v any) error

	// CreateFile creates a regular file at a relative path for streamed
	// content, returning the writer and the absolute path.
	CreateFile(relPath string) (io.WriteCloser, string, error)

	// Dir returns the absolute output directory.
	Dir() string
}
