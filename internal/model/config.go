package model

import "fmt"

// Task names recorded in the checkpoint's completed set.
const (
	TaskFirestore  = "firestore"
	TaskAuth       = "auth"
	TaskStorage    = "storage"
	TaskRealtimeDB = "realtime_db"
)

// Config is the internal export configuration. It is immutable for the
// lifetime of a run.
type Config struct {
	ProjectID     string
	StorageBucket string
	DatabaseURL   string

	IncludeSubcollections bool
	IncludeStorageFiles   bool
	MaxStorageFileSizeMB  int64

	FirestoreBatchSize     int
	AuthBatchSize          int
	StorageConcurrentFiles int

	MaxFirestoreReads int
	MaxAuthExports    int
}

// DefaultConfig returns a configuration with the standard batch sizes and
// safety ceilings.
func DefaultConfig() Config {
	return Config{
		IncludeSubcollections:  true,
		IncludeStorageFiles:    false,
		MaxStorageFileSizeMB:   100,
		FirestoreBatchSize:     1000,
		AuthBatchSize:          1000,
		StorageConcurrentFiles: 50,
		MaxFirestoreReads:      50000,
		MaxAuthExports:         50000,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("project ID is required")
	}
	if c.FirestoreBatchSize <= 0 {
		return fmt.Errorf("firestore batch size must be positive: %d", c.FirestoreBatchSize)
	}
	if c.AuthBatchSize <= 0 {
		return fmt.Errorf("auth batch size must be positive: %d", c.AuthBatchSize)
	}
	if c.StorageConcurrentFiles <= 0 {
		return fmt.Errorf("storage concurrency must be positive: %d", c.StorageConcurrentFiles)
	}
	if c.MaxFirestoreReads <= 0 {
		return fmt.Errorf("max firestore reads must be positive: %d", c.MaxFirestoreReads)
	}
	if c.MaxAuthExports <= 0 {
		return fmt.Errorf("max auth exports must be positive: %d", c.MaxAuthExports)
	}
	if c.IncludeStorageFiles && c.MaxStorageFileSizeMB <= 0 {
		return fmt.Errorf("max storage file size must be positive when downloads are enabled: %d", c.MaxStorageFileSizeMB)
	}
	return nil
}
