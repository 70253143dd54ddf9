package usecase

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

const authUsersFile = "auth/users.json"

// authCheckpointInterval is how many exported users pass between
// checkpoint saves inside one page.
const authCheckpointInterval = 100

// exportAuth streams all identity records page by page. The opaque
// continuation token is persisted verbatim after each completed page, so a
// resumed run replays it instead of relisting from the start; the
// last-exported UID guards against duplicates inside a refetched page.
func (e *Export) exportAuth(ctx context.Context) error {
	e.logger.Info("Starting Auth export")

	users, err := e.loadAuthOutput()
	if err != nil {
		return err
	}

	pageToken := e.checkpoint.AuthPageToken
	complete := false
	var fatalErr error

	for {
		if err := ctx.Err(); err != nil {
			fatalErr = err
			break
		}

		page, nextToken, err := e.clients.Auth.ListUsers(ctx, e.config.AuthBatchSize, pageToken)
		if err != nil {
			e.logger.Error("Failed to list users, keeping partial export",
				slog.String("pageToken", pageToken), slog.Any("error", err))
			break
		}

		for _, user := range page {
			if e.checkpoint.AuthLastUID != "" && user.UID <= e.checkpoint.AuthLastUID {
				continue
			}

			// Extended MFA detail is best-effort enrichment; its failure
			// never drops the primary record.
			factors, err := e.clients.Auth.GetUserMFAFactors(ctx, user.UID)
			if err != nil {
				e.logger.Debug("Could not fetch MFA factors",
					slog.String("uid", user.UID), slog.Any("error", err))
			} else {
				user.MFAEnrolledFactors = factors
			}

			users = append(users, user)
			e.stats.AuthUsers++
			e.checkpoint.AuthLastUID = user.UID

			if e.stats.AuthUsers%authCheckpointInterval == 0 {
				e.logger.Info("Exported users", slog.Int("count", e.stats.AuthUsers))
				if err := e.flushAuthOutput(users); err != nil {
					return err
				}
			}
		}

		e.checkpoint.AuthPageToken = nextToken
		if err := e.flushAuthOutput(users); err != nil {
			return err
		}
		if err := e.checkLimits(); err != nil {
			fatalErr = err
			break
		}

		if nextToken == "" {
			complete = true
			break
		}
		pageToken = nextToken
	}

	if err := e.output.WriteJSON(authUsersFile, users); err != nil {
		return err
	}
	if fatalErr != nil {
		return fatalErr
	}
	if !complete {
		return goerr.New("auth export stopped early, will retry on next run")
	}

	e.logger.Info("Auth export complete", slog.Int("users", len(users)))
	e.checkpoint.MarkTaskDone(model.TaskAuth)
	return e.checkpoints.Save(e.checkpoint)
}

// flushAuthOutput writes the accumulated records before persisting the
// checkpoint that covers them, so a crash between the two re-exports a
// record instead of losing it.
func (e *Export) flushAuthOutput(users []model.User) error {
	if err := e.output.WriteJSON(authUsersFile, users); err != nil {
		return err
	}
	return e.checkpoints.Save(e.checkpoint)
}

// loadAuthOutput reloads previously exported users when resuming so the
// remaining records are appended rather than replacing the file.
func (e *Export) loadAuthOutput() ([]model.User, error) {
	if e.checkpoint.AuthLastUID == "" && e.checkpoint.AuthPageToken == "" {
		return nil, nil
	}
	var users []model.User
	if err := e.output.ReadJSON(authUsersFile, &users); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read prior auth output")
	}
	return users, nil
}
