package firebase

import (
	"context"
	"encoding/base64"
	"io"
	"time"

	cloudstorage "cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"google.golang.org/api/iterator"
)

// storageClient adapts a bucket handle to the object storage capability.
type storageClient struct {
	bucket *cloudstorage.BucketHandle
}

// ListObjects lists all object names in the bucket.
func (c *storageClient) ListObjects(ctx context.Context) ([]string, error) {
	var names []string
	it := c.bucket.Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list objects")
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// StatObject fetches metadata for one object.
func (c *storageClient) StatObject(ctx context.Context, name string) (*model.FileInfo, error) {
	attrs, err := c.bucket.Object(name).Attrs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get object attributes", goerr.V("name", name))
	}

	return &model.FileInfo{
		Name:               attrs.Name,
		Bucket:             attrs.Bucket,
		Size:               attrs.Size,
		ContentType:        attrs.ContentType,
		Created:            attrs.Created,
		Updated:            attrs.Updated,
		Etag:               attrs.Etag,
		MD5Hash:            base64.StdEncoding.EncodeToString(attrs.MD5),
		CRC32C:             attrs.CRC32C,
		Metadata:           attrs.Metadata,
		CacheControl:       attrs.CacheControl,
		ContentDisposition: attrs.ContentDisposition,
		ContentEncoding:    attrs.ContentEncoding,
		ContentLanguage:    attrs.ContentLanguage,
	}, nil
}

// SignedURL generates a time-bounded V4 download URL.
func (c *storageClient) SignedURL(name string, expiry time.Duration) (string, error) {
	url, err := c.bucket.SignedURL(name, &cloudstorage.SignedURLOptions{
		Scheme:  cloudstorage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiry),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign URL", goerr.V("name", name))
	}
	return url, nil
}

// ReadObject opens the object content for streaming.
func (c *storageClient) ReadObject(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := c.bucket.Object(name).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object", goerr.V("name", name))
	}
	return reader, nil
}
