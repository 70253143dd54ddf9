package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/interfaces"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

// Clients bundles the remote service collaborators. A nil client disables
// the corresponding domain export.
type Clients struct {
	Firestore  interfaces.FirestoreClient
	Auth       interfaces.AuthClient
	Storage    interfaces.StorageClient
	RealtimeDB interfaces.RealtimeDBClient
}

// Export runs the checkpointed, resumable export pipeline across the four
// data domains.
type Export struct {
	config      model.Config
	clients     Clients
	checkpoints interfaces.CheckpointStore
	output      interfaces.OutputWriter
	logger      *slog.Logger

	checkpoint *model.Checkpoint
	stats      *model.Stats
	tasks      map[string]model.TaskState
}

// NewExport creates the export pipeline.
func NewExport(clients Clients, checkpoints interfaces.CheckpointStore, output interfaces.OutputWriter, config model.Config, logger *slog.Logger) *Export {
	return &Export{
		config:      config,
		clients:     clients,
		checkpoints: checkpoints,
		output:      output,
		logger:      logger,
	}
}

type domainTask struct {
	name       string
	run        func(context.Context) error
	enabled    bool
	skipReason string
}

// Execute runs the domain exports strictly sequentially: a later domain
// never starts before an earlier one is fully done or explicitly skipped.
// A summary is produced on every path. On full success the checkpoint is
// deleted; on interrupt, crossed ceiling, or domain failure it is left
// intact so the next invocation resumes.
func (e *Export) Execute(ctx context.Context) (*model.Summary, error) {
	checkpoint, err := e.checkpoints.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load checkpoint")
	}
	e.checkpoint = checkpoint
	e.stats = model.NewStats()
	e.tasks = map[string]model.TaskState{}

	if checkpoint.HasProgress() {
		e.logger.Info("Resuming from checkpoint",
			slog.Any("completedTasks", checkpoint.CompletedTasks),
			slog.Int("completedCollections", len(checkpoint.FirestoreCollections)),
			slog.Int("completedFiles", len(checkpoint.StorageFiles)))
	}

	e.logger.Info("Starting Firebase export", slog.String("project", e.config.ProjectID))

	tasks := []domainTask{
		{model.TaskFirestore, e.exportFirestore, e.clients.Firestore != nil, "no firestore client"},
		{model.TaskAuth, e.exportAuth, e.clients.Auth != nil, "no auth client"},
		{model.TaskStorage, e.exportStorage, e.clients.Storage != nil, "no storage bucket configured"},
		{model.TaskRealtimeDB, e.exportRealtimeDB, e.clients.RealtimeDB != nil, "no database URL configured"},
	}

	var fatalErr error
	var firstDomainErr error
	for _, task := range tasks {
		if e.checkpoint.IsTaskDone(task.name) {
			e.logger.Info("Skipping task (already completed)", slog.String("task", task.name))
			e.tasks[task.name] = model.TaskSkipped
			continue
		}
		if !task.enabled {
			e.logger.Info("Skipping task", slog.String("task", task.name), slog.String("reason", task.skipReason))
			e.tasks[task.name] = model.TaskSkipped
			continue
		}

		e.tasks[task.name] = model.TaskRunning
		err := task.run(ctx)
		if err == nil {
			e.tasks[task.name] = model.TaskCompleted
			continue
		}

		e.tasks[task.name] = model.TaskFailed
		if isFatal(ctx, err) {
			e.logger.Error("Export aborted", slog.String("task", task.name), slog.Any("error", err))
			fatalErr = goerr.Wrap(err, "export aborted", goerr.V("task", task.name))
			break
		}

		// Recoverable per-domain failure: the task was not checkpointed,
		// so it is retried in full on the next invocation.
		e.logger.Error("Task failed, continuing with next task",
			slog.String("task", task.name), slog.Any("error", err))
		if firstDomainErr == nil {
			firstDomainErr = goerr.Wrap(err, "task failed", goerr.V("task", task.name))
		}
	}

	summary := e.writeSummary()

	switch {
	case fatalErr != nil:
		e.logger.Info("Progress saved, re-run to resume")
		return summary, fatalErr
	case firstDomainErr != nil:
		e.logger.Info("Progress saved, re-run to resume")
		return summary, firstDomainErr
	}

	if err := e.checkpoints.Clear(); err != nil {
		return summary, goerr.Wrap(err, "failed to clear checkpoint")
	}

	e.logger.Info("Export complete",
		slog.String("dir", e.output.Dir()),
		slog.Int("collections", e.stats.FirestoreCollections),
		slog.Int("subcollections", e.stats.FirestoreSubcollections),
		slog.Int("reads", e.stats.FirestoreReads),
		slog.Int("users", e.stats.AuthUsers),
		slog.Int("files", e.stats.StorageFiles),
		slog.Int64("bytes", e.stats.StorageBytes),
		slog.Duration("duration", time.Since(e.stats.StartTime)))

	return summary, nil
}

// writeSummary builds the run summary and writes it best-effort; the
// summary must come out even on the failure paths.
func (e *Export) writeSummary() *model.Summary {
	summary := model.BuildSummary(e.config.ProjectID, e.stats, e.tasks, e.checkpoint.CompletedTasks, time.Now())
	if err := e.output.WriteJSON("export_summary.json", summary); err != nil {
		e.logger.Error("Failed to write export summary", slog.Any("error", err))
	}
	return summary
}

// isFatal reports whether an error must stop the whole run: a crossed
// safety ceiling or cancellation. Everything else is contained to its
// domain.
func isFatal(ctx context.Context, err error) bool {
	var limitErr *model.LimitError
	if errors.As(err, &limitErr) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return ctx.Err() != nil
}
