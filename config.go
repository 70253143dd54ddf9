package fbexport

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
)

// Config represents export configuration. It is read-only for the lifetime
// of a run.
type Config struct {
	// StorageBucket is the Cloud Storage bucket to export. Empty skips the
	// storage export.
	StorageBucket string `yaml:"storage_bucket,omitempty"`

	// DatabaseURL is the Realtime Database URL. Empty skips the realtime
	// database export.
	DatabaseURL string `yaml:"database_url,omitempty"`

	// IncludeSubcollections enables recursive export of nested collections
	// discovered while walking documents.
	IncludeSubcollections bool `yaml:"include_subcollections"`

	// IncludeStorageFiles enables downloading object content, not only
	// metadata.
	IncludeStorageFiles bool `yaml:"include_storage_files"`

	// MaxStorageFileSizeMB caps the size of objects whose content is
	// downloaded.
	MaxStorageFileSizeMB int64 `yaml:"max_storage_file_size_mb"`

	// FirestoreBatchSize is the page size for document listing.
	FirestoreBatchSize int `yaml:"firestore_batch_size"`

	// AuthBatchSize is the page size for user listing.
	AuthBatchSize int `yaml:"auth_batch_size"`

	// StorageConcurrentFiles caps the storage worker pool.
	StorageConcurrentFiles int `yaml:"storage_concurrent_files"`

	// MaxFirestoreReads is the safety ceiling on cumulative document reads.
	MaxFirestoreReads int `yaml:"max_firestore_reads"`

	// MaxAuthExports is the safety ceiling on exported user records.
	MaxAuthExports int `yaml:"max_auth_exports"`
}

// DefaultConfig returns the standard batch sizes and safety ceilings.
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

// LoadConfigFromYAML loads configuration from a YAML file. Absent fields
// keep their default values.
func LoadConfigFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by user as CLI argument
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML")
	}

	return &config, nil
}

// SaveToYAML saves configuration to a YAML file
func (c *Config) SaveToYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal config to YAML")
	}

	// #nosec G306 - YAML config files should be readable by others
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate validates configuration
func (c *Config) Validate() error {
	if c.FirestoreBatchSize <= 0 {
		return &ValidationError{Field: "firestore_batch_size", Message: "must be positive"}
	}
	if c.AuthBatchSize <= 0 {
		return &ValidationError{Field: "auth_batch_size", Message: "must be positive"}
	}
	if c.StorageConcurrentFiles <= 0 {
		return &ValidationError{Field: "storage_concurrent_files", Message: "must be positive"}
	}
	if c.MaxFirestoreReads <= 0 {
		return &ValidationError{Field: "max_firestore_reads", Message: "must be positive"}
	}
	if c.MaxAuthExports <= 0 {
		return &ValidationError{Field: "max_auth_exports", Message: "must be positive"}
	}
	if c.IncludeStorageFiles && c.MaxStorageFileSizeMB <= 0 {
		return &ValidationError{Field: "max_storage_file_size_mb", Message: "must be positive when file downloads are enabled"}
	}
	return nil
}
