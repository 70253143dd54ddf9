package usecase

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

const firestoreDataFile = "firestore/firestore_data.json"

// exportFirestore walks every top-level collection and, when enabled, every
// nested collection transitively discovered from its documents.
func (e *Export) exportFirestore(ctx context.Context) error {
	e.logger.Info("Starting Firestore export")

	collections, err := e.clients.Firestore.ListCollections(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list root collections")
	}
	e.logger.Info("Found root collections", slog.Int("count", len(collections)))

	allData, err := e.loadFirestoreOutput()
	if err != nil {
		return err
	}
	registry := newDiscoveryRegistry()
	incomplete := 0
	var fatalErr error

	for _, collectionID := range collections {
		if e.checkpoint.IsCollectionDone(collectionID) {
			e.logger.Info("Skipping collection (already exported)", slog.String("collection", collectionID))
			continue
		}
		e.logger.Info("Exporting collection", slog.String("collection", collectionID))

		records, complete, err := e.exportCollection(ctx, collectionID, registry)
		allData[collectionID] = records
		if err != nil {
			fatalErr = err
			break
		}

		if e.config.IncludeSubcollections {
			subData, subsComplete, err := e.exportSubcollections(ctx, collectionID, registry)
			if len(subData) > 0 {
				allData[collectionID+"_subcollections"] = subData
			}
			if err != nil {
				fatalErr = err
				break
			}
			complete = complete && subsComplete
		}

		e.stats.FirestoreCollections++

		// A partially exported collection stays out of the completed set so
		// the next invocation retries it in full. A complete one goes to
		// disk before it is checkpointed: a checkpointed collection must
		// always have its records in the output, no matter how a later
		// collection ends this run.
		if complete {
			if err := e.writeFirestoreOutput(allData, registry); err != nil {
				return err
			}
			e.checkpoint.MarkCollectionDone(collectionID)
			if err := e.checkpoints.Save(e.checkpoint); err != nil {
				return err
			}
		} else {
			incomplete++
		}
	}

	if err := e.writeFirestoreOutput(allData, registry); err != nil {
		return err
	}
	if fatalErr != nil {
		return fatalErr
	}

	if incomplete > 0 {
		// Completed collections are checkpointed above; leaving the task
		// unmarked makes the next invocation retry just the partial ones.
		return goerr.New("some collections partially exported, will retry on next run",
			goerr.V("incomplete", incomplete))
	}

	e.logger.Info("Firestore export complete",
		slog.Int("collections", e.stats.FirestoreCollections),
		slog.Int("subcollections", e.stats.FirestoreSubcollections),
		slog.Int("reads", e.stats.FirestoreReads))

	e.checkpoint.MarkTaskDone(model.TaskFirestore)
	return e.checkpoints.Save(e.checkpoint)
}

// writeFirestoreOutput flushes the accumulated documents and the discovered
// nested-collection paths.
func (e *Export) writeFirestoreOutput(allData map[string]any, registry *discoveryRegistry) error {
	if err := e.output.WriteJSON(firestoreDataFile, allData); err != nil {
		return err
	}
	return e.output.WriteJSON("firestore/subcollections_discovered.json", registry.Paths())
}

// exportCollection pages through one collection in document-ID order with a
// resumption cursor. The returned flag reports whether the collection was
// fully paged; a page-fetch failure only cuts this one collection short.
// Safety ceilings are checked per page and surface as a fatal error.
func (e *Export) exportCollection(ctx context.Context, collectionPath string, registry *discoveryRegistry) ([]model.DocumentRecord, bool, error) {
	var records []model.DocumentRecord
	cursor := ""

	for {
		if err := ctx.Err(); err != nil {
			return records, false, err
		}

		docs, err := e.clients.Firestore.GetDocuments(ctx, collectionPath, e.config.FirestoreBatchSize, cursor)
		if err != nil {
			e.logger.Error("Failed to fetch documents, keeping partial collection",
				slog.String("collection", collectionPath),
				slog.String("cursor", cursor),
				slog.Any("error", err))
			return records, false, nil
		}

		e.stats.FirestoreReads += len(docs)
		if err := e.checkLimits(); err != nil {
			return records, false, err
		}
		if len(docs) == 0 {
			return records, true, nil
		}

		for _, doc := range docs {
			record := model.DocumentRecord{
				ID:   doc.ID,
				Path: doc.Path,
				Data: model.EncodeValue(doc.Data),
			}
			if !doc.CreateTime.IsZero() {
				record.CreateTime = doc.CreateTime.UTC().Format(time.RFC3339Nano)
			}
			if !doc.UpdateTime.IsZero() {
				record.UpdateTime = doc.UpdateTime.UTC().Format(time.RFC3339Nano)
			}

			if e.config.IncludeSubcollections {
				subs, err := e.clients.Firestore.ListSubcollections(ctx, doc.Path)
				if err != nil {
					e.logger.Debug("Could not discover subcollections",
						slog.String("document", doc.Path), slog.Any("error", err))
				} else if len(subs) > 0 {
					registry.Add(subs...)
					record.Subcollections = subs
				}
			}

			records = append(records, record)
		}

		cursor = docs[len(docs)-1].ID
	}
}

// exportSubcollections drains the discovery registry for one top-level
// collection. Paths discovered while exporting a nested collection are
// queued as well, so nesting of arbitrary depth is exported.
func (e *Export) exportSubcollections(ctx context.Context, collectionID string, registry *discoveryRegistry) (map[string][]model.DocumentRecord, bool, error) {
	subData := map[string][]model.DocumentRecord{}
	complete := true

	for {
		path, ok := registry.NextPending(collectionID)
		if !ok {
			return subData, complete, nil
		}
		registry.MarkVisited(path)

		e.logger.Info("Exporting subcollection", slog.String("path", path))
		records, subComplete, err := e.exportCollection(ctx, path, registry)
		if err != nil {
			return subData, false, err
		}
		subData[path] = records
		complete = complete && subComplete
		e.stats.FirestoreSubcollections++
	}
}

// loadFirestoreOutput merges previously written output when resuming a
// partially exported Firestore task, so completed collections from the
// earlier invocation are not lost on rewrite.
func (e *Export) loadFirestoreOutput() (map[string]any, error) {
	allData := map[string]any{}
	if len(e.checkpoint.FirestoreCollections) == 0 {
		return allData, nil
	}
	if err := e.output.ReadJSON(firestoreDataFile, &allData); err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read prior firestore output")
	}
	return allData, nil
}
