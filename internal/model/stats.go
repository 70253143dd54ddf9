package model

import "time"

// Stats accumulates per-run counters. It is diagnostic state only: it is
// never persisted and starts from zero on every invocation, including
// resumed ones.
type Stats struct {
	FirestoreReads          int
	FirestoreCollections    int
	FirestoreSubcollections int
	AuthUsers               int
	StorageFiles            int
	StorageBytes            int64
	RealtimeDBExported      bool
	StartTime               time.Time
}

// NewStats returns stats with the start time set to now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// TaskState describes the outcome of one domain export within a run.
type TaskState string

const (
	TaskPending   TaskState = "pending"
	TaskRunning   TaskState = "running"
	TaskCompleted TaskState = "completed"
	TaskSkipped   TaskState = "skipped"
	TaskFailed    TaskState = "failed"
)

// Summary is the final run report written to export_summary.json.
type Summary struct {
	ExportMetadata SummaryMetadata      `json:"export_metadata"`
	Statistics     SummaryStatistics    `json:"statistics"`
	Tasks          map[string]TaskState `json:"tasks"`
	CompletedTasks []string             `json:"completed_tasks"`
}

// SummaryMetadata describes the run itself.
type SummaryMetadata struct {
	ProjectID       string  `json:"project_id"`
	ExportTime      string  `json:"export_time"`
	CompletionTime  string  `json:"completion_time"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// SummaryStatistics groups per-domain counters.
type SummaryStatistics struct {
	Firestore  FirestoreStats  `json:"firestore"`
	Auth       AuthStats       `json:"auth"`
	Storage    StorageStats    `json:"storage"`
	RealtimeDB RealtimeDBStats `json:"realtime_db"`
}

type FirestoreStats struct {
	Collections    int `json:"collections"`
	Subcollections int `json:"subcollections"`
	Reads          int `json:"reads"`
}

type AuthStats struct {
	Users int `json:"users"`
}

type StorageStats struct {
	Files int   `json:"files"`
	Bytes int64 `json:"bytes"`
}

type RealtimeDBStats struct {
	Exported bool `json:"exported"`
}

// BuildSummary assembles the final summary from run state.
func BuildSummary(projectID string, stats *Stats, tasks map[string]TaskState, completed []string, now time.Time) *Summary {
	return &Summary{
		ExportMetadata: SummaryMetadata{
			ProjectID:       projectID,
			ExportTime:      stats.StartTime.Format(time.RFC3339),
			CompletionTime:  now.Format(time.RFC3339),
			DurationSeconds: now.Sub(stats.StartTime).Seconds(),
		},
		Statistics: SummaryStatistics{
			Firestore: FirestoreStats{
				Collections:    stats.FirestoreCollections,
				Subcollections: stats.FirestoreSubcollections,
				Reads:          stats.FirestoreReads,
			},
			Auth:       AuthStats{Users: stats.AuthUsers},
			Storage:    StorageStats{Files: stats.StorageFiles, Bytes: stats.StorageBytes},
			RealtimeDB: RealtimeDBStats{Exported: stats.RealtimeDBExported},
		},
		Tasks:          tasks,
		CompletedTasks: completed,
	}
}
