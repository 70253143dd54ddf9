package fbexport

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/adapter/firebase"
	"github.com/michaelDinelle/FireBaseExportScript/internal/adapter/local"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"github.com/michaelDinelle/FireBaseExportScript/internal/usecase"
)

// checkpointFileName is the checkpoint's location inside the output
// directory.
const checkpointFileName = ".checkpoint.json"

// Client is the main client for export operations
type Client struct {
	projectID string
	firebase  *firebase.Client
	config    *Config
	options   *options
	logger    *slog.Logger
}

// New creates a new export client authenticated against a project. A nil
// config uses the defaults.
func New(ctx context.Context, projectID string, config *Config, opts ...Option) (*Client, error) {
	options := applyOptions(opts)

	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if config == nil {
		defaults := DefaultConfig()
		config = &defaults
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	firebaseClient, err := firebase.NewClient(ctx, firebase.AuthConfig{
		ProjectID:     projectID,
		StorageBucket: config.StorageBucket,
		DatabaseURL:   config.DatabaseURL,
		Credentials:   options.CredentialsFile,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Firebase client")
	}

	return &Client{
		projectID: projectID,
		firebase:  firebaseClient,
		config:    config,
		options:   options,
		logger:    options.Logger,
	}, nil
}

// Close closes the client
func (c *Client) Close() error {
	if c.firebase != nil {
		return c.firebase.Close()
	}
	return nil
}

// OutputDir returns the directory the export is written to.
func (c *Client) OutputDir() string {
	if c.options.OutputDir != "" {
		return c.options.OutputDir
	}
	// Stable per project so re-invoking after an interrupt finds the
	// checkpoint again.
	return "firebase-export-" + c.projectID
}

// Export runs the resumable export pipeline. On failure or interruption the
// checkpoint is left in the output directory and a partial summary is still
// returned; re-invoking Export resumes from it.
func (c *Client) Export(ctx context.Context) (*Summary, error) {
	internalConfig := convertToInternalConfig(c.projectID, c.config)
	if err := internalConfig.Validate(); err != nil {
		return nil, &ValidationError{Field: "config", Message: err.Error()}
	}

	outputDir := c.OutputDir()
	output, err := local.NewOutputWriter(outputDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare output directory")
	}
	checkpoints := local.NewCheckpointStore(filepath.Join(outputDir, checkpointFileName))

	export := usecase.NewExport(usecase.Clients{
		Firestore:  c.firebase.Firestore(),
		Auth:       c.firebase.Auth(),
		Storage:    c.firebase.Storage(),
		RealtimeDB: c.firebase.RealtimeDB(),
	}, checkpoints, output, internalConfig, c.logger)

	summary, runErr := export.Execute(ctx)
	publicSummary := convertSummary(summary)
	if runErr != nil {
		return publicSummary, wrapRunError(runErr)
	}
	return publicSummary, nil
}

// wrapRunError maps pipeline errors onto the public error types.
func wrapRunError(err error) error {
	var limitErr *model.LimitError
	if errors.As(err, &limitErr) {
		return &ExportError{
			Operation: "export",
			Cause: &LimitError{
				Counter: limitErr.Counter,
				Limit:   limitErr.Limit,
				Value:   limitErr.Value,
			},
		}
	}
	return &ExportError{Operation: "export", Cause: err}
}

// Summary is the public run report.
type Summary struct {
	FirestoreCollections    int
	FirestoreSubcollections int
	FirestoreReads          int
	AuthUsers               int
	StorageFiles            int
	StorageBytes            int64
	RealtimeDBExported      bool
	DurationSeconds         float64
	CompletedTasks          []string
}

func convertSummary(summary *model.Summary) *Summary {
	if summary == nil {
		return nil
	}
	return &Summary{
		FirestoreCollections:    summary.Statistics.Firestore.Collections,
		FirestoreSubcollections: summary.Statistics.Firestore.Subcollections,
		FirestoreReads:          summary.Statistics.Firestore.Reads,
		AuthUsers:               summary.Statistics.Auth.Users,
		StorageFiles:            summary.Statistics.Storage.Files,
		StorageBytes:            summary.Statistics.Storage.Bytes,
		RealtimeDBExported:      summary.Statistics.RealtimeDB.Exported,
		DurationSeconds:         summary.ExportMetadata.DurationSeconds,
		CompletedTasks:          summary.CompletedTasks,
	}
}

// convertToInternalConfig converts the public API to the internal model
func convertToInternalConfig(projectID string, config *Config) model.Config {
	return model.Config{
		ProjectID:              projectID,
		StorageBucket:          config.StorageBucket,
		DatabaseURL:            config.DatabaseURL,
		IncludeSubcollections:  config.IncludeSubcollections,
		IncludeStorageFiles:    config.IncludeStorageFiles,
		MaxStorageFileSizeMB:   config.MaxStorageFileSizeMB,
		FirestoreBatchSize:     config.FirestoreBatchSize,
		AuthBatchSize:          config.AuthBatchSize,
		StorageConcurrentFiles: config.StorageConcurrentFiles,
		MaxFirestoreReads:      config.MaxFirestoreReads,
		MaxAuthExports:         config.MaxAuthExports,
	}
}
