package local

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

// CheckpointStore persists the checkpoint as a JSON file in the export
// directory.
type CheckpointStore struct {
	path string
}

// NewCheckpointStore creates a store writing to the given file path.
func NewCheckpointStore(path string) interfaces.CheckpointStore {
	return &CheckpointStore{path: path}
}

// Load reads the checkpoint file. A missing file yields an empty
// checkpoint. A file that exists but cannot be parsed is an error: it is
// never silently replaced, because that would re-run completed work.
func (s *CheckpointStore) Load() (*model.Checkpoint, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCheckpoint(), nil
		}
		return nil, goerr.Wrap(err, "failed to read checkpoint file", goerr.V("path", s.path))
	}

	var checkpoint model.Checkpoint
	if err := json.Unmarshal(data, &checkpoint); err != nil {
		return nil, goerr.Wrap(err, "checkpoint file is corrupt, delete it to start over", goerr.V("path", s.path))
	}
	checkpoint.Normalize()

	return &checkpoint, nil
}

// Save writes the full current state with a temp-file-then-rename so an
// interrupt never leaves a truncated checkpoint behind.
func (s *CheckpointStore) Save(checkpoint *model.Checkpoint) error {
	data, err := json.MarshalIndent(checkpoint, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal checkpoint")
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return goerr.Wrap(err, "failed to write checkpoint file", goerr.V("path", s.path))
	}

	return nil
}

// Clear removes the checkpoint file. Absence is not an error.
func (s *CheckpointStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove checkpoint file", goerr.V("path", s.path))
	}
	return nil
}
