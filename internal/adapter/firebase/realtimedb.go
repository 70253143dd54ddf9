package firebase

import (
	"context"

	"firebase.google.com/go/v4/db"
	"github.com/m-mizutani/goerr/v2"
)

// realtimeDBClient adapts the Admin SDK database client to the key-value
// tree capability.
type realtimeDBClient struct {
	client *db.Client
}

// GetTree fetches the entire tree rooted at the database root.
func (c *realtimeDBClient) GetTree(ctx context.Context) (any, error) {
	var tree any
	if err := c.client.NewRef("/").Get(ctx, &tree); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch database tree")
	}
	return tree, nil
}
