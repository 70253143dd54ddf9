package fbexport

import "log/slog"

// options represents client options
type options struct {
	// Logger for logging operations
	Logger *slog.Logger

	// CredentialsFile specifies the service account key file path (optional)
	CredentialsFile string

	// OutputDir is where export artifacts and the checkpoint are written.
	// Empty derives a stable per-project directory.
	OutputDir string
}

// Option is a function that configures options
type Option func(*options)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// WithCredentialsFile sets the credentials file path
func WithCredentialsFile(path string) Option {
	return func(o *options) {
		o.CredentialsFile = path
	}
}

// WithOutputDir sets the export output directory. Re-running with the same
// directory resumes from its checkpoint.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.OutputDir = dir
	}
}

// applyOptions applies option functions to options
func applyOptions(opts []Option) *options {
	o := &options{
		Logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
