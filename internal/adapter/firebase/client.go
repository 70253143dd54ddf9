package firebase

import (
	"context"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"

	"cloud.google.com/go/firestore"
	cloudstorage "cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
	"google.golang.org/api/option"
)

// AuthConfig represents project and authentication configuration
type AuthConfig struct {
	ProjectID     string
	StorageBucket string // optional, disables storage export when empty
	DatabaseURL   string // optional, disables realtime database export when empty
	Credentials   string // Service account key file path (optional)
}

// Client wraps the Firebase Admin SDK handles for all four data domains.
type Client struct {
	app       *fb.App
	firestore *firestore.Client
	auth      *fbauth.Client
	bucket    *cloudstorage.BucketHandle
	rtdb      *db.Client
	config    AuthConfig
}

// NewClient initializes the Firebase Admin SDK against a project. Handles
// for storage and realtime database are only created when configured.
func NewClient(ctx context.Context, config AuthConfig) (*Client, error) {
	// Use ADC or explicit credentials
	var opts []option.ClientOption
	if config.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(config.Credentials))
	}

	app, err := fb.NewApp(ctx, &fb.Config{
		ProjectID:     config.ProjectID,
		StorageBucket: config.StorageBucket,
		DatabaseURL:   config.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Firebase app")
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Auth client")
	}

	client := &Client{
		app:       app,
		firestore: firestoreClient,
		auth:      authClient,
		config:    config,
	}

	if config.StorageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Storage client")
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open storage bucket", goerr.V("bucket", config.StorageBucket))
		}
		client.bucket = bucket
	}

	if config.DatabaseURL != "" {
		rtdb, err := app.Database(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Realtime Database client", goerr.V("url", config.DatabaseURL))
		}
		client.rtdb = rtdb
	}

	return client, nil
}

// Close closes the underlying clients.
func (c *Client) Close() error {
	return c.firestore.Close()
}

// Firestore returns the structured database capability.
func (c *Client) Firestore() interfaces.FirestoreClient {
	return &firestoreClient{client: c.firestore}
}

// Auth returns the identity service capability.
func (c *Client) Auth() interfaces.AuthClient {
	return &authClient{client: c.auth}
}

// Storage returns the object storage capability, or nil when no bucket is
// configured.
func (c *Client) Storage() interfaces.StorageClient {
	if c.bucket == nil {
		return nil
	}
	return &storageClient{bucket: c.bucket}
}

// RealtimeDB returns the key-value tree capability, or nil when no
// database URL is configured.
func (c *Client) RealtimeDB() interfaces.RealtimeDBClient {
	if c.rtdb == nil {
		return nil
	}
	return &realtimeDBClient{client: c.rtdb}
}
