package model

// Checkpoint is the persisted progress record that makes a run resumable.
// It is saved after every meaningfully-sized unit of work and deleted only
// when all domain exports have completed.
//
// Once a task name appears in CompletedTasks its output is final and the
// task is never reprocessed, in this run or a resumed one.
type Checkpoint struct {
	CompletedTasks       []string        `json:"completed_tasks"`
	FirestoreCollections map[string]bool `json:"firestore_collections"`
	AuthLastUID          string          `json:"auth_last_uid,omitempty"`
	AuthPageToken        string          `json:"auth_page_token,omitempty"`
	StorageFiles         map[string]bool `json:"storage_files"`
}

// NewCheckpoint returns an empty checkpoint for a fresh run.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{
		CompletedTasks:       []string{},
		FirestoreCollections: map[string]bool{},
		StorageFiles:         map[string]bool{},
	}
}

// Normalize fills nil maps after JSON decoding.
func (c *Checkpoint) Normalize() {
	if c.FirestoreCollections == nil {
		c.FirestoreCollections = map[string]bool{}
	}
	if c.StorageFiles == nil {
		c.StorageFiles = map[string]bool{}
	}
}

// IsTaskDone reports whether a domain export has already completed.
func (c *Checkpoint) IsTaskDone(task string) bool {
	for _, t := range c.CompletedTasks {
		if t == task {
			return true
		}
	}
	return false
}

// MarkTaskDone appends a task to the completed set.
func (c *Checkpoint) MarkTaskDone(task string) {
	if !c.IsTaskDone(task) {
		c.CompletedTasks = append(c.CompletedTasks, task)
	}
}

// IsCollectionDone reports whether a top-level collection export has
// already completed.
func (c *Checkpoint) IsCollectionDone(collectionID string) bool {
	return c.FirestoreCollections[collectionID]
}

// MarkCollectionDone marks a top-level collection as fully exported.
func (c *Checkpoint) MarkCollectionDone(collectionID string) {
	c.FirestoreCollections[collectionID] = true
}

// HasStorageFile reports whether a storage object was already exported.
func (c *Checkpoint) HasStorageFile(name string) bool {
	return c.StorageFiles[name]
}

// MarkStorageFile records a storage object as exported.
func (c *Checkpoint) MarkStorageFile(name string) {
	c.StorageFiles[name] = true
}

// HasProgress reports whether any work has been recorded at all. A fresh
// checkpoint with no progress does not need to be persisted.
func (c *Checkpoint) HasProgress() bool {
	return len(c.CompletedTasks) > 0 ||
		len(c.FirestoreCollections) > 0 ||
		len(c.StorageFiles) > 0 ||
		c.AuthLastUID != "" ||
		c.AuthPageToken != ""
}
