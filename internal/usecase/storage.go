package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"golang.org/x/sync/errgroup"
)

const storageMetadataFile = "storage/files_metadata.json"

// storageCheckpointInterval is how many completed items pass between
// incremental checkpoint saves, so a crash mid-pass loses at most the last
// partial batch.
const storageCheckpointInterval = 50

// signedURLExpiry bounds the generated download URLs.
const signedURLExpiry = 7 * 24 * time.Hour

type storageResult struct {
	name   string
	record *model.FileRecord
	err    error
}

// exportStorage fetches metadata (and optionally content) for every object
// in the bucket across a bounded worker pool. Results are merged as they
// complete; all checkpoint and stats mutation happens in the single
// consumer loop on this goroutine, so no locking is needed there.
func (e *Export) exportStorage(ctx context.Context) error {
	e.logger.Info("Starting Storage export")

	names, err := e.clients.Storage.ListObjects(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list storage objects")
	}

	var pending []string
	for _, name := range names {
		if !e.checkpoint.HasStorageFile(name) {
			pending = append(pending, name)
		}
	}
	e.logger.Info("Found storage objects",
		slog.Int("total", len(names)), slog.Int("pending", len(pending)))

	records, err := e.loadStorageOutput()
	if err != nil {
		return err
	}

	results := make(chan storageResult)
	poolCtx, cancelPool := context.WithCancel(ctx)
	defer cancelPool()
	g, gctx := errgroup.WithContext(poolCtx)
	sem := make(chan struct{}, e.config.StorageConcurrentFiles)

	for _, name := range pending {
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := e.processStorageObject(gctx, name)
			select {
			case results <- storageResult{name: name, record: record, err: err}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	processed := 0
	failed := 0
	var flushErr error
	for result := range results {
		if flushErr != nil {
			// The pool was cancelled; keep draining so no worker stays
			// blocked on the results channel.
			continue
		}
		if result.err != nil {
			// One item's failure is isolated: log, leave it out of the
			// checkpoint so the next run retries it, keep draining.
			failed++
			e.logger.Error("Failed to process storage object",
				slog.String("name", result.name), slog.Any("error", result.err))
			continue
		}

		records = append(records, *result.record)
		e.stats.StorageFiles++
		e.stats.StorageBytes += result.record.Size
		e.checkpoint.MarkStorageFile(result.name)

		processed++
		if processed%storageCheckpointInterval == 0 {
			e.logger.Info("Processed storage objects", slog.Int("count", processed))
			if err := e.flushStorageOutput(records); err != nil {
				flushErr = err
				cancelPool()
			}
		}
	}

	if err := e.flushStorageOutput(records); err != nil && flushErr == nil {
		flushErr = err
	}
	if flushErr != nil {
		return flushErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		// Failed items are absent from the checkpoint set; leaving the task
		// incomplete makes the next invocation retry just those items.
		return goerr.New("some storage objects failed, will retry on next run",
			goerr.V("failed", failed))
	}

	e.logger.Info("Storage export complete",
		slog.Int("files", e.stats.StorageFiles), slog.Int64("bytes", e.stats.StorageBytes))
	e.checkpoint.MarkTaskDone(model.TaskStorage)
	return e.checkpoints.Save(e.checkpoint)
}

// flushStorageOutput writes the collected metadata records before saving
// the checkpoint that marks them done, so every checkpointed object has its
// record on disk.
func (e *Export) flushStorageOutput(records []model.FileRecord) error {
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	if err := e.output.WriteJSON(storageMetadataFile, records); err != nil {
		return err
	}
	return e.checkpoints.Save(e.checkpoint)
}

// processStorageObject is one independent unit of work, run on a pool
// worker. Only the metadata fetch can fail the unit; URL generation and
// content download degrade the record instead.
func (e *Export) processStorageObject(ctx context.Context, name string) (*model.FileRecord, error) {
	info, err := e.clients.Storage.StatObject(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch object metadata", goerr.V("name", name))
	}

	record := &model.FileRecord{
		Name:               info.Name,
		Bucket:             info.Bucket,
		Size:               info.Size,
		ContentType:        info.ContentType,
		Etag:               info.Etag,
		MD5Hash:            info.MD5Hash,
		CRC32C:             info.CRC32C,
		Metadata:           info.Metadata,
		CacheControl:       info.CacheControl,
		ContentDisposition: info.ContentDisposition,
		ContentEncoding:    info.ContentEncoding,
		ContentLanguage:    info.ContentLanguage,
	}
	if record.Metadata == nil {
		record.Metadata = map[string]string{}
	}
	if !info.Created.IsZero() {
		record.TimeCreated = info.Created.UTC().Format(time.RFC3339Nano)
	}
	if !info.Updated.IsZero() {
		record.Updated = info.Updated.UTC().Format(time.RFC3339Nano)
	}

	url, err := e.clients.Storage.SignedURL(name, signedURLExpiry)
	if err != nil {
		e.logger.Debug("Could not generate signed URL",
			slog.String("name", name), slog.Any("error", err))
	} else {
		record.DownloadURL = url
	}

	if e.config.IncludeStorageFiles && info.Size > 0 && info.Size < e.config.MaxStorageFileSizeMB*1024*1024 {
		if err := e.downloadStorageObject(ctx, name, record); err != nil {
			e.logger.Warn("Could not download object content",
				slog.String("name", name), slog.Any("error", err))
		}
	}

	return record, nil
}

// downloadStorageObject streams object content into the export directory,
// computing a SHA-256 checksum while copying.
func (e *Export) downloadStorageObject(ctx context.Context, name string, record *model.FileRecord) error {
	reader, err := e.clients.Storage.ReadObject(ctx, name)
	if err != nil {
		return goerr.Wrap(err, "failed to open object")
	}
	defer reader.Close()

	file, path, err := e.output.CreateFile("storage/files/" + sanitizeFileName(name))
	if err != nil {
		return err
	}

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(file, hash), reader); err != nil {
		_ = file.Close()
		return goerr.Wrap(err, "failed to download object")
	}
	if err := file.Close(); err != nil {
		return goerr.Wrap(err, "failed to finish download")
	}

	record.LocalPath = path
	record.SHA256Checksum = hex.EncodeToString(hash.Sum(nil))
	return nil
}

// sanitizeFileName flattens an object name into a single path-safe file
// name.
func sanitizeFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

// loadStorageOutput reloads previously exported metadata records when
// resuming a partial storage pass.
func (e *Export) loadStorageOutput() ([]model.FileRecord, error) {
	if len(e.checkpoint.StorageFiles) == 0 {
		return nil, nil
	}
	var records []model.FileRecord
	if err := e.output.ReadJSON(storageMetadataFile, &records); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read prior storage output")
	}
	return records, nil
}
