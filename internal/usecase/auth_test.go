package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/michaelDinelle/FireBaseExportScript/internal/adapter/local"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces/mock"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"github.com/michaelDinelle/FireBaseExportScript/internal/usecase"
)

// pagedAuth serves fixed 100-user pages keyed by continuation token, with
// an optional set of tokens that fail.
func pagedAuth(failOn map[string]bool) *mock.AuthClientMock {
	pages := map[string]struct {
		users []model.User
		next  string
	}{
		"":   {makeUsers(1, 100), "t1"},
		"t1": {makeUsers(101, 200), "t2"},
		"t2": {makeUsers(201, 250), ""},
	}

	client := noopAuth()
	client.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		if failOn[pageToken] {
			return nil, "", errors.New("listing failed")
		}
		page := pages[pageToken]
		return page.users, page.next, nil
	}
	return client
}

func TestAuthInterruptAndResume(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	run1 := pagedAuth(map[string]bool{"t2": true})
	pipe1 := newPipeline(t, dir, usecase.Clients{Auth: run1}, testConfig())
	_, err := pipe1.export.Execute(ctx)
	gt.Error(t, err)

	t.Run("Error: partial output and token survive the failure", func(t *testing.T) {
		var users []model.User
		gt.NoError(t, pipe1.output.ReadJSON("auth/users.json", &users))
		gt.Equal(t, len(users), 200)

		checkpoint, loadErr := pipe1.checkpoints.Load()
		gt.NoError(t, loadErr)
		gt.Equal(t, checkpoint.AuthPageToken, "t2")
		gt.Equal(t, checkpoint.AuthLastUID, "user-200")
		gt.Equal(t, checkpoint.IsTaskDone(model.TaskAuth), false)
	})

	run2 := pagedAuth(nil)
	pipe2 := newPipeline(t, dir, usecase.Clients{Auth: run2}, testConfig())
	_, err = pipe2.export.Execute(ctx)
	gt.NoError(t, err)

	t.Run("Normal: resume replays only the failed page onward", func(t *testing.T) {
		calls := run2.ListUsersCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].PageToken, "t2")
	})

	t.Run("Normal: final output has every user exactly once", func(t *testing.T) {
		var users []model.User
		gt.NoError(t, pipe2.output.ReadJSON("auth/users.json", &users))
		gt.Equal(t, len(users), 250)

		seen := map[string]bool{}
		for _, user := range users {
			gt.Equal(t, seen[user.UID], false)
			seen[user.UID] = true
		}
	})
}

func TestAuthUIDGuardSkipsRefetchedUsers(t *testing.T) {
	ctx := context.Background()

	client := noopAuth()
	client.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		// A replayed page overlapping what the earlier run already wrote.
		return makeUsers(51, 150), "", nil
	}

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Auth: client}, testConfig())

	checkpoint := model.NewCheckpoint()
	checkpoint.AuthLastUID = "user-100"
	checkpoint.AuthPageToken = "t1"
	gt.NoError(t, pipe.checkpoints.Save(checkpoint))

	summary, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	gt.Equal(t, summary.Statistics.Auth.Users, 50)

	var users []model.User
	gt.NoError(t, pipe.output.ReadJSON("auth/users.json", &users))
	gt.Equal(t, len(users), 50)
	gt.Equal(t, users[0].UID, "user-101")
}

func TestAuthMFAEnrichment(t *testing.T) {
	ctx := context.Background()

	client := noopAuth()
	client.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		return makeUsers(1, 2), "", nil
	}
	client.GetUserMFAFactorsFunc = func(ctx context.Context, uid string) ([]model.MFAFactor, error) {
		if uid == "user-002" {
			return nil, errors.New("permission denied")
		}
		return []model.MFAFactor{{UID: "mfa-1", FactorID: "phone"}}, nil
	}

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Auth: client}, testConfig())
	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)

	var users []model.User
	gt.NoError(t, pipe.output.ReadJSON("auth/users.json", &users))
	gt.Equal(t, len(users), 2)
	gt.Equal(t, len(users[0].MFAEnrolledFactors), 1)
	gt.Equal(t, users[0].MFAEnrolledFactors[0].FactorID, "phone")

	// Enrichment failure never drops the primary record.
	gt.Equal(t, users[1].UID, "user-002")
	gt.Equal(t, len(users[1].MFAEnrolledFactors), 0)
}

func TestAuthOutputDurableBeforeCheckpoint(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Every checkpoint save must find the user it points at already in the
	// output file, so a crash right after the save cannot lose the record.
	saves := 0
	hook := &checkpointHook{
		CheckpointStore: local.NewCheckpointStore(filepath.Join(dir, ".checkpoint.json")),
	}
	hook.onSave = func(checkpoint *model.Checkpoint) {
		saves++
		if checkpoint.AuthLastUID == "" {
			return
		}

		data, err := os.ReadFile(filepath.Join(dir, "auth", "users.json"))
		gt.NoError(t, err)
		var users []model.User
		gt.NoError(t, json.Unmarshal(data, &users))

		found := false
		for _, user := range users {
			if user.UID == checkpoint.AuthLastUID {
				found = true
			}
		}
		gt.Equal(t, found, true)
	}

	pipe := newPipelineWith(t, dir, usecase.Clients{Auth: pagedAuth(nil)}, testConfig(), hook)
	_, err := pipe.export.Execute(ctx)
	gt.NoError(t, err)
	gt.True(t, saves >= 4)
}

func TestAuthExportLimit(t *testing.T) {
	ctx := context.Background()

	page := 0
	client := noopAuth()
	client.ListUsersFunc = func(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
		page++
		return makeUsers(page*3-2, page*3), "more", nil
	}

	config := testConfig()
	config.AuthBatchSize = 3
	config.MaxAuthExports = 5

	pipe := newPipeline(t, t.TempDir(), usecase.Clients{Auth: client}, config)
	_, err := pipe.export.Execute(ctx)
	gt.Error(t, err)

	var limitErr *model.LimitError
	gt.Equal(t, errors.As(err, &limitErr), true)
	gt.Equal(t, limitErr.Counter, "auth_exports")
	gt.Equal(t, limitErr.Value, 6)
	gt.Equal(t, len(client.ListUsersCalls()), 2)

	// Everything exported before the ceiling is kept on disk.
	var users []model.User
	gt.NoError(t, pipe.output.ReadJSON("auth/users.json", &users))
	gt.Equal(t, len(users), 6)
}
