package interfaces

import (
	"context"
	"io"
	"time"

	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

//go:generate task mock

// FirestoreClient is the capability interface for the structured database.
// Collection paths are slash-separated ("users" for a top-level collection,
// "users/u1/profile" for a nested one).
type FirestoreClient interface {
	// ListCollections lists all top-level collection IDs.
	ListCollections(ctx context.Context) ([]string, error)

	// GetDocuments returns up to pageSize documents of a collection in
	// document-ID order, starting after the given document ID. An empty
	// startAfter starts from the beginning. An empty result means the
	// collection is exhausted.
	GetDocuments(ctx context.Context, collectionPath string, pageSize int, startAfter string) ([]model.Document, error)

	// ListSubcollections returns the fully qualified paths of the child
	// collections of a document.
	ListSubcollections(ctx context.Context, documentPath string) ([]string, error)

	Close() error
}

// AuthClient is the capability interface for the identity service.
type AuthClient interface {
	// ListUsers returns one page of user records together with the opaque
	// continuation token for the next page. An empty returned token means
	// the listing is exhausted.
	ListUsers(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error)

	// GetUserMFAFactors fetches the enrolled multi-factor entries of one
	// user. This is best-effort enrichment.
	GetUserMFAFactors(ctx context.Context, uid string) ([]model.MFAFactor, error)
}

// StorageClient is the capability interface for object storage.
type StorageClient interface {
	// ListObjects lists all object names in the bucket.
	ListObjects(ctx context.Context) ([]string, error)

	// StatObject fetches metadata for one object.
	StatObject(ctx context.Context, name string) (*model.FileInfo, error)

	// SignedURL generates a time-bounded download URL for one object.
	SignedURL(name string, expiry time.Duration) (string, error)

	// ReadObject opens the object content for streaming.
	ReadObject(ctx context.Context, name string) (io.ReadCloser, error)
}

// RealtimeDBClient is the capability interface for the hierarchical
// key-value tree.
type RealtimeDBClient interface {
	// GetTree fetches the entire tree rooted at the configured location.
	GetTree(ctx context.Context) (any, error)
}
