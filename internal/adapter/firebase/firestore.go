package firebase

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/googleapis/gax-go/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreClient adapts the Firestore SDK to the structured database
// capability.
type firestoreClient struct {
	client *firestore.Client
}

const pageFetchRetries = 3

// ListCollections lists all top-level collection IDs.
func (c *firestoreClient) ListCollections(ctx context.Context) ([]string, error) {
	var collections []string
	it := c.client.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list collections")
		}
		collections = append(collections, col.ID)
	}
	return collections, nil
}

// GetDocuments returns one page of documents in document-ID order. This is
// cursor-based pagination: two pages of the same collection are never
// fetched concurrently, and a StartAfter cursor tolerates concurrent
// source writes without skipping or duplicating within a pass.
func (c *firestoreClient) GetDocuments(ctx context.Context, collectionPath string, pageSize int, startAfter string) ([]model.Document, error) {
	query := c.client.Collection(collectionPath).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(pageSize)
	if startAfter != "" {
		query = query.StartAfter(startAfter)
	}

	var snapshots []*firestore.DocumentSnapshot
	backoff := gax.Backoff{
		Initial:    200 * time.Millisecond,
		Max:        5 * time.Second,
		Multiplier: 2,
	}
	for attempt := 0; ; attempt++ {
		var err error
		snapshots, err = query.Documents(ctx).GetAll()
		if err == nil {
			break
		}
		if attempt >= pageFetchRetries || !isRetryable(err) {
			return nil, goerr.Wrap(err, "failed to fetch documents",
				goerr.V("collection", collectionPath), goerr.V("cursor", startAfter))
		}
		if err := gax.Sleep(ctx, backoff.Pause()); err != nil {
			return nil, err
		}
	}

	docs := make([]model.Document, 0, len(snapshots))
	for _, snap := range snapshots {
		docs = append(docs, model.Document{
			ID:         snap.Ref.ID,
			Path:       relativePath(snap.Ref.Path),
			Data:       convertData(snap.Data()),
			CreateTime: snap.CreateTime,
			UpdateTime: snap.UpdateTime,
		})
	}
	return docs, nil
}

// ListSubcollections probes a document for child collections and returns
// their fully qualified paths.
func (c *firestoreClient) ListSubcollections(ctx context.Context, documentPath string) ([]string, error) {
	var paths []string
	it := c.client.Doc(documentPath).Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list subcollections", goerr.V("document", documentPath))
		}
		paths = append(paths, documentPath+"/"+col.ID)
	}
	return paths, nil
}

func (c *firestoreClient) Close() error {
	return c.client.Close()
}

// isRetryable classifies transient RPC failures worth a backoff retry.
func isRetryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// relativePath strips the resource prefix
// (projects/{p}/databases/{d}/documents/) from a document path.
func relativePath(resourcePath string) string {
	if _, rel, found := strings.Cut(resourcePath, "/documents/"); found {
		return rel
	}
	return resourcePath
}

// convertData normalizes vendor reference values so everything downstream
// of the adapter is SDK-free.
func convertData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = convertValue(v)
	}
	return out
}

func convertValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return convertData(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertValue(item)
		}
		return out
	case *firestore.DocumentRef:
		return model.Reference{Path: relativePath(val.Path)}
	default:
		return v
	}
}
