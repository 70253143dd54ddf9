package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

// exportRealtimeDB fetches the whole key-value tree as one nested structure
// and writes it with a metadata record.
func (e *Export) exportRealtimeDB(ctx context.Context) error {
	e.logger.Info("Starting Realtime Database export")

	tree, err := e.clients.RealtimeDB.GetTree(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch database tree")
	}

	if err := e.output.WriteJSON("realtime_db/database.json", tree); err != nil {
		return err
	}

	size := 0
	if raw, err := json.Marshal(tree); err == nil {
		size = len(raw)
	}
	metadata := model.RealtimeDBMetadata{
		ExportTime:         time.Now().UTC().Format(time.RFC3339),
		DatabaseURL:        e.config.DatabaseURL,
		EstimatedSizeBytes: size,
	}
	if err := e.output.WriteJSON("realtime_db/metadata.json", metadata); err != nil {
		return err
	}

	e.stats.RealtimeDBExported = true
	e.logger.Info("Realtime Database export complete", slog.Int("bytes", size))

	e.checkpoint.MarkTaskDone(model.TaskRealtimeDB)
	return e.checkpoints.Save(e.checkpoint)
}
