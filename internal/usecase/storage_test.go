package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/michaelDinelle/FireBaseExportScript/internal/adapter/local"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces/mock"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"github.com/michaelDinelle/FireBaseExportScript/internal/usecase"
)

func staticStorage(objects map[string]string) *mock.StorageClientMock {
	names := make([]string, 0, len(objects))
	for name := range objects {
		names = append(names, name)
	}

	return &mock.StorageClientMock{
		ListObjectsFunc: func(ctx context.Context) ([]string, error) {
			return names, nil
		},
		StatObjectFunc: func(ctx context.Context, name string) (*model.FileInfo, error) {
			return &model.FileInfo{
				Name:        name,
				Bucket:      "test-bucket",
				Size:        int64(len(objects[name])),
				ContentType: "text/plain",
			}, nil
		},
		SignedURLFunc: func(name string, expiry time.Duration) (string, error) {
			return "https://signed.example.com/" + name, nil
		},
		ReadObjectFunc: func(ctx context.Context, name string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(objects[name])), nil
		},
	}
}

func TestStorageMetadataExport(t *testing.T) {
	ctx := context.Background()

	storageMock := staticStorage(map[string]string{
		"b.txt":      "bb",
		"a.txt":      "a",
		"docs/c.txt": "ccc",
	})

	config := testConfig()
	config.IncludeStorageFiles = false

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Storage: storageMock}, config)
	summary, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	gt.Equal(t, summary.Statistics.Storage.Files, 3)
	gt.Equal(t, summary.Statistics.Storage.Bytes, int64(6))

	var records []model.FileRecord
	gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
	gt.Equal(t, len(records), 3)

	// Records come out sorted regardless of worker completion order.
	gt.Equal(t, records[0].Name, "a.txt")
	gt.Equal(t, records[1].Name, "b.txt")
	gt.Equal(t, records[2].Name, "docs/c.txt")
	gt.Equal(t, records[0].DownloadURL, "https://signed.example.com/a.txt")
	gt.Equal(t, records[0].Bucket, "test-bucket")

	// Metadata-only export never opens object content.
	gt.Equal(t, len(storageMock.ReadObjectCalls()), 0)
}

func TestStorageItemFailureIsolation(t *testing.T) {
	ctx := context.Background()

	storageMock := staticStorage(map[string]string{
		"ok-1.txt": "1",
		"ok-2.txt": "2",
		"bad.txt":  "x",
		"ok-3.txt": "3",
	})
	base := storageMock.StatObjectFunc
	storageMock.StatObjectFunc = func(ctx context.Context, name string) (*model.FileInfo, error) {
		if name == "bad.txt" {
			return nil, errors.New("object gone")
		}
		return base(ctx, name)
	}

	config := testConfig()
	config.IncludeStorageFiles = false

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Storage: storageMock}, config)
	summary, err := pipe.export.Execute(ctx)
	gt.Error(t, err)

	t.Run("Normal: healthy items are exported and checkpointed", func(t *testing.T) {
		var records []model.FileRecord
		gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
		gt.Equal(t, len(records), 3)

		checkpoint, loadErr := pipe.checkpoints.Load()
		gt.NoError(t, loadErr)
		gt.Equal(t, checkpoint.HasStorageFile("ok-1.txt"), true)
		gt.Equal(t, checkpoint.HasStorageFile("bad.txt"), false)
	})

	t.Run("Error: task stays incomplete so the item is retried", func(t *testing.T) {
		gt.Equal(t, summary.Tasks[model.TaskStorage], model.TaskFailed)
		checkpoint, loadErr := pipe.checkpoints.Load()
		gt.NoError(t, loadErr)
		gt.Equal(t, checkpoint.IsTaskDone(model.TaskStorage), false)
	})
}

func TestStorageContentDownload(t *testing.T) {
	ctx := context.Background()

	storageMock := staticStorage(map[string]string{
		"docs/hello.txt": "hello world",
	})

	config := testConfig()
	config.IncludeStorageFiles = true

	dir := t.TempDir()
	pipe := newPipeline(t, dir, usecase.Clients{Storage: storageMock}, config)
	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	var records []model.FileRecord
	gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
	gt.Equal(t, len(records), 1)

	// Path separators are flattened for the local copy.
	localPath := filepath.Join(dir, "storage", "files", "docs_hello.txt")
	gt.Equal(t, records[0].LocalPath, localPath)
	gt.Equal(t, records[0].SHA256Checksum,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")

	content, readErr := os.ReadFile(localPath)
	gt.NoError(t, readErr)
	gt.Equal(t, string(content), "hello world")
}

func TestStorageSkipsOversizedDownloads(t *testing.T) {
	ctx := context.Background()

	storageMock := staticStorage(map[string]string{"big.bin": "xx"})
	base := storageMock.StatObjectFunc
	storageMock.StatObjectFunc = func(ctx context.Context, name string) (*model.FileInfo, error) {
		info, err := base(ctx, name)
		if err != nil {
			return nil, err
		}
		info.Size = 200 * 1024 * 1024
		return info, nil
	}

	config := testConfig()
	config.IncludeStorageFiles = true
	config.MaxStorageFileSizeMB = 100

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Storage: storageMock}, config)
	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	gt.Equal(t, len(storageMock.ReadObjectCalls()), 0)

	var records []model.FileRecord
	gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
	gt.Equal(t, records[0].LocalPath, "")
}

func manyObjects(n int) map[string]string {
	objects := make(map[string]string, n)
	for i := 1; i <= n; i++ {
		objects[fmt.Sprintf("f%03d.txt", i)] = "x"
	}
	return objects
}

func TestStorageOutputDurableBeforeCheckpoint(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storageMock := staticStorage(manyObjects(120))

	config := testConfig()
	config.IncludeStorageFiles = false

	// Every checkpoint save must find all of its objects already in the
	// metadata file, so a crash right after the save cannot lose a record.
	saves := 0
	hook := &checkpointHook{
		CheckpointStore: local.NewCheckpointStore(filepath.Join(dir, ".checkpoint.json")),
	}
	hook.onSave = func(checkpoint *model.Checkpoint) {
		saves++
		if len(checkpoint.StorageFiles) == 0 {
			return
		}

		data, err := os.ReadFile(filepath.Join(dir, "storage", "files_metadata.json"))
		gt.NoError(t, err)
		var records []model.FileRecord
		gt.NoError(t, json.Unmarshal(data, &records))

		onDisk := map[string]bool{}
		for _, record := range records {
			onDisk[record.Name] = true
		}
		for name := range checkpoint.StorageFiles {
			gt.Equal(t, onDisk[name], true)
		}
	}

	pipe := newPipelineWith(t, dir, usecase.Clients{Storage: storageMock}, config, hook)
	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)
	gt.True(t, saves >= 3)
}

// brokenCheckpointStore fails every save, for exercising mid-pass
// persistence failures.
type brokenCheckpointStore struct {
	interfaces.CheckpointStore
}

func (s *brokenCheckpointStore) Save(*model.Checkpoint) error {
	return errors.New("disk full")
}

func TestStorageCheckpointFailureStopsPool(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storageMock := staticStorage(manyObjects(120))

	config := testConfig()
	config.IncludeStorageFiles = false

	store := &brokenCheckpointStore{
		CheckpointStore: local.NewCheckpointStore(filepath.Join(dir, ".checkpoint.json")),
	}
	pipe := newPipelineWith(t, dir, usecase.Clients{Storage: storageMock}, config, store)

	// A hung worker pool would make this call block forever.
	_, err := pipe.export.Execute(ctx)
	gt.Error(t, err).Contains("disk full")

	t.Run("Normal: records collected before the failure are written", func(t *testing.T) {
		var records []model.FileRecord
		gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
		gt.Equal(t, len(records), 50)
	})

	t.Run("Normal: nothing was checkpointed without its record", func(t *testing.T) {
		_, statErr := os.Stat(filepath.Join(dir, ".checkpoint.json"))
		gt.Equal(t, os.IsNotExist(statErr), true)
	})
}

func TestStorageResumeSkipsExportedObjects(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	objects := map[string]string{}
	for i := 1; i <= 4; i++ {
		objects[fmt.Sprintf("f%d.txt", i)] = "x"
	}
	storageMock := staticStorage(objects)

	config := testConfig()
	config.IncludeStorageFiles = false

	pipe := newPipeline(t, dir, usecase.Clients{Storage: storageMock}, config)

	checkpoint := model.NewCheckpoint()
	checkpoint.MarkStorageFile("f1.txt")
	checkpoint.MarkStorageFile("f2.txt")
	gt.NoError(t, pipe.checkpoints.Save(checkpoint))

	// Metadata the earlier invocation already wrote for the first two.
	gt.NoError(t, pipe.output.WriteJSON("storage/files_metadata.json", []model.FileRecord{
		{Name: "f1.txt", Bucket: "test-bucket", Size: 1},
		{Name: "f2.txt", Bucket: "test-bucket", Size: 1},
	}))

	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	t.Run("Normal: exported objects are never refetched", func(t *testing.T) {
		gt.Equal(t, len(storageMock.StatObjectCalls()), 2)
		for _, call := range storageMock.StatObjectCalls() {
			gt.NotEqual(t, call.Name, "f1.txt")
			gt.NotEqual(t, call.Name, "f2.txt")
		}
	})

	t.Run("Normal: prior metadata is merged into the final file", func(t *testing.T) {
		var records []model.FileRecord
		gt.NoError(t, pipe.output.ReadJSON("storage/files_metadata.json", &records))
		gt.Equal(t, len(records), 4)
		gt.Equal(t, records[0].Name, "f1.txt")
		gt.Equal(t, records[3].Name, "f4.txt")
	})
}
