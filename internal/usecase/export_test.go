package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"github.com/michaelDinelle/FireBaseExportScript/internal/usecase"
)

func TestExportFullRun(t *testing.T) {
	ctx := context.Background()

	firestoreMock := staticFirestore(
		[]string{"orders", "users"},
		map[string][]model.Document{
			"users": {
				makeDoc("users/u1", map[string]any{"name": "alice"}),
			},
			"users/u1/profile": {
				makeDoc("users/u1/profile/p1", map[string]any{"lang": "en"}),
			},
			"orders": {
				makeDoc("orders/o1", map[string]any{"total": 42}),
			},
		},
		map[string][]string{
			"users/u1": {"users/u1/profile"},
		},
	)
	authMock := noopAuth()
	authMock.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		return makeUsers(1, 3), "", nil
	}
	rtdbMock := realtimeDBWithTree(map[string]any{"rooms": map[string]any{"r1": "open"}})

	dir := t.TempDir()
	pipe := newPipeline(t, dir, usecase.Clients{
		Firestore:  firestoreMock,
		Auth:       authMock,
		RealtimeDB: rtdbMock,
	}, testConfig())

	summary, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	t.Run("Normal: summary reflects the run", func(t *testing.T) {
		gt.Equal(t, summary.Statistics.Firestore.Collections, 2)
		gt.Equal(t, summary.Statistics.Firestore.Subcollections, 1)
		gt.Equal(t, summary.Statistics.Firestore.Reads, 3)
		gt.Equal(t, summary.Statistics.Auth.Users, 3)
		gt.Equal(t, summary.Statistics.RealtimeDB.Exported, true)
		gt.Equal(t, summary.Tasks[model.TaskFirestore], model.TaskCompleted)
		gt.Equal(t, summary.Tasks[model.TaskAuth], model.TaskCompleted)
		gt.Equal(t, summary.Tasks[model.TaskStorage], model.TaskSkipped)
		gt.Equal(t, summary.Tasks[model.TaskRealtimeDB], model.TaskCompleted)
	})

	t.Run("Normal: firestore output contains nested collections", func(t *testing.T) {
		var allData map[string]any
		gt.NoError(t, pipe.output.ReadJSON("firestore/firestore_data.json", &allData))
		gt.Equal(t, len(allData["users"].([]any)), 1)
		gt.Equal(t, len(allData["orders"].([]any)), 1)

		subs := allData["users_subcollections"].(map[string]any)
		gt.Equal(t, len(subs["users/u1/profile"].([]any)), 1)

		var discovered []string
		gt.NoError(t, pipe.output.ReadJSON("firestore/subcollections_discovered.json", &discovered))
		gt.Equal(t, discovered, []string{"users/u1/profile"})
	})

	t.Run("Normal: auth output contains all users", func(t *testing.T) {
		var users []model.User
		gt.NoError(t, pipe.output.ReadJSON("auth/users.json", &users))
		gt.Equal(t, len(users), 3)
		gt.Equal(t, users[0].UID, "user-001")
	})

	t.Run("Normal: realtime db output contains the tree", func(t *testing.T) {
		var tree map[string]any
		gt.NoError(t, pipe.output.ReadJSON("realtime_db/database.json", &tree))
		gt.Equal(t, tree["rooms"].(map[string]any)["r1"], "open")
	})

	t.Run("Normal: checkpoint is removed after a clean run", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, ".checkpoint.json"))
		gt.Equal(t, os.IsNotExist(err), true)
	})
}

func TestExportSkipsCompletedTasks(t *testing.T) {
	ctx := context.Background()

	firestoreMock := staticFirestore(nil, nil, nil)
	authMock := noopAuth()

	dir := t.TempDir()
	pipe := newPipeline(t, dir, usecase.Clients{
		Firestore: firestoreMock,
		Auth:      authMock,
	}, testConfig())

	checkpoint := model.NewCheckpoint()
	checkpoint.MarkTaskDone(model.TaskFirestore)
	gt.NoError(t, pipe.checkpoints.Save(checkpoint))

	summary, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	gt.Equal(t, len(firestoreMock.ListCollectionsCalls()), 0)
	gt.Equal(t, summary.Tasks[model.TaskFirestore], model.TaskSkipped)
	gt.Equal(t, summary.Tasks[model.TaskAuth], model.TaskCompleted)
}

func TestExportDomainFailureIsolation(t *testing.T) {
	ctx := context.Background()

	firestoreMock := staticFirestore(nil, nil, nil)
	authMock := noopAuth()
	authMock.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		return nil, "", errors.New("auth service unavailable")
	}
	rtdbMock := realtimeDBWithTree(map[string]any{"ok": true})

	dir := t.TempDir()
	pipe := newPipeline(t, dir, usecase.Clients{
		Firestore:  firestoreMock,
		Auth:       authMock,
		RealtimeDB: rtdbMock,
	}, testConfig())

	summary, err := pipe.export.Execute(ctx)
	gt.Error(t, err)

	t.Run("Normal: later domains still run", func(t *testing.T) {
		gt.Equal(t, summary.Tasks[model.TaskAuth], model.TaskFailed)
		gt.Equal(t, summary.Tasks[model.TaskRealtimeDB], model.TaskCompleted)
		gt.Equal(t, len(rtdbMock.GetTreeCalls()), 1)
	})

	t.Run("Normal: checkpoint survives and omits the failed task", func(t *testing.T) {
		_, statErr := os.Stat(filepath.Join(dir, ".checkpoint.json"))
		gt.NoError(t, statErr)

		checkpoint, loadErr := pipe.checkpoints.Load()
		gt.NoError(t, loadErr)
		gt.Equal(t, checkpoint.IsTaskDone(model.TaskAuth), false)
		gt.Equal(t, checkpoint.IsTaskDone(model.TaskFirestore), true)
	})
}

func TestExportCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	firestoreMock := staticFirestore(nil, nil, nil)
	firestoreMock.ListCollectionsFunc = func(ctx context.Context) ([]string, error) {
		cancel()
		return nil, ctx.Err()
	}
	rtdbMock := realtimeDBWithTree(map[string]any{})

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{
		Firestore:  firestoreMock,
		RealtimeDB: rtdbMock,
	}, testConfig())

	summary, err := pipe.export.Execute(ctx)
	gt.Error(t, err)

	// Cancellation stops the whole run, not just the current domain.
	gt.Equal(t, summary.Tasks[model.TaskFirestore], model.TaskFailed)
	gt.Equal(t, len(rtdbMock.GetTreeCalls()), 0)
}
