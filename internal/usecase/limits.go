package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
)

// checkLimits compares the cumulative counters against the configured
// ceilings. It is consulted after every page of work, so a runaway source
// stops within one page of its ceiling. A crossed ceiling is an abort, not
// a throttle.
func (e *Export) checkLimits() error {
	if e.stats.FirestoreReads >= e.config.MaxFirestoreReads {
		return goerr.Wrap(&model.LimitError{
			Counter: "firestore_reads",
			Limit:   e.config.MaxFirestoreReads,
			Value:   e.stats.FirestoreReads,
		}, "firestore read limit reached")
	}
	if e.stats.AuthUsers >= e.config.MaxAuthExports {
		return goerr.Wrap(&model.LimitError{
			Counter: "auth_exports",
			Limit:   e.config.MaxAuthExports,
			Value:   e.stats.AuthUsers,
		}, "auth export limit reached")
	}
	return nil
}
