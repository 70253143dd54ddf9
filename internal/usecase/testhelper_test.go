package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/michaelDinelle/FireBaseExportScript/internal/adapter/local"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces/mock"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"github.com/michaelDinelle/FireBaseExportScript/internal/usecase"
)

// pipeline bundles an Export wired to real local adapters in a temp dir,
// so tests can inspect the checkpoint and output files a run leaves
// behind.
type pipeline struct {
	export      *usecase.Export
	checkpoints interfaces.CheckpointStore
	output      interfaces.OutputWriter
	dir         string
}

func newPipeline(t *testing.T, dir string, clients usecase.Clients, config model.Config) *pipeline {
	t.Helper()
	return newPipelineWith(t, dir, clients, config,
		local.NewCheckpointStore(filepath.Join(dir, ".checkpoint.json")))
}

func newPipelineWith(t *testing.T, dir string, clients usecase.Clients, config model.Config, checkpoints interfaces.CheckpointStore) *pipeline {
	t.Helper()

	output, err := local.NewOutputWriter(dir)
	gt.NoError(t, err)

	return &pipeline{
		export:      usecase.NewExport(clients, checkpoints, output, config, slog.Default()),
		checkpoints: checkpoints,
		output:      output,
		dir:         dir,
	}
}

// checkpointHook observes every checkpoint save before it is applied, for
// asserting what is durable on disk at save time.
type checkpointHook struct {
	interfaces.CheckpointStore
	onSave func(*model.Checkpoint)
}

func (s *checkpointHook) Save(checkpoint *model.Checkpoint) error {
	if s.onSave != nil {
		s.onSave(checkpoint)
	}
	return s.CheckpointStore.Save(checkpoint)
}

func testConfig() model.Config {
	config := model.DefaultConfig()
	config.ProjectID = "test-project"
	return config
}

// staticFirestore builds a Firestore mock over fixed document sets keyed
// by collection path, paging them in document-ID order like the real
// adapter does.
func staticFirestore(collections []string, docs map[string][]model.Document, subs map[string][]string) *mock.FirestoreClientMock {
	return &mock.FirestoreClientMock{
		ListCollectionsFunc: func(ctx context.Context) ([]string, error) {
			return collections, nil
		},
		GetDocumentsFunc: func(ctx context.Context, collectionPath string, pageSize int, startAfter string) ([]model.Document, error) {
			return pageDocs(docs[collectionPath], pageSize, startAfter), nil
		},
		ListSubcollectionsFunc: func(ctx context.Context, documentPath string) ([]string, error) {
			return subs[documentPath], nil
		},
		CloseFunc: func() error { return nil },
	}
}

func pageDocs(all []model.Document, pageSize int, startAfter string) []model.Document {
	start := 0
	if startAfter != "" {
		for i, doc := range all {
			if doc.ID == startAfter {
				start = i + 1
				break
			}
		}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

func makeDoc(docPath string, data map[string]any) model.Document {
	return model.Document{
		ID:   path.Base(docPath),
		Path: docPath,
		Data: data,
	}
}

// makeUsers builds n users with zero-padded UIDs so lexicographic and
// numeric order agree.
func makeUsers(from, to int) []model.User {
	users := make([]model.User, 0, to-from+1)
	for i := from; i <= to; i++ {
		users = append(users, model.User{UID: fmt.Sprintf("user-%03d", i)})
	}
	return users
}

func realtimeDBWithTree(tree any) *mock.RealtimeDBClientMock {
	return &mock.RealtimeDBClientMock{
		GetTreeFunc: func(ctx context.Context) (any, error) {
			return tree, nil
		},
	}
}

func noopAuth() *mock.AuthClientMock {
	return &mock.AuthClientMock{
		ListUsersFunc: func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
			return nil, "", nil
		},
		GetUserMFAFactorsFunc: func(ctx context.Context, uid string) ([]model.MFAFactor, error) {
			return nil, nil
		},
	}
}
