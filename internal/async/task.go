// Package async provides the Redis-backed task queue that decouples
// job submission from extraction workers.
package async

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
)

// TaskKind identifies what a worker should do with a job.
type TaskKind string

const (
	TaskProcessJob       TaskKind = "process_job"
	TaskStructureSkipped TaskKind = "structure_skipped"
	TaskReextractPages   TaskKind = "reextract_pages"
)

// Task is a unit of work placed on the queue.
type Task struct {
	Kind        TaskKind           `json:"kind"`
	JobID       uuid.UUID          `json:"job_id"`
	Pages       []int              `json:"pages,omitempty"`
	Provider    constants.Provider `json:"provider,omitempty"`
	Attempt     int                `json:"attempt,omitempty"`
	TraceID     string             `json:"trace_id"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// NewTask builds a task with a fresh trace ID and submission timestamp.
func NewTask(kind TaskKind, jobID uuid.UUID) Task {
	return Task{
		Kind:        kind,
		JobID:       jobID,
		TraceID:     uuid.NewString(),
		SubmittedAt: time.Now().UTC(),
	}
}

// fields flattens the task into a Redis stream entry.
func (t Task) fields() map[string]any {
	m := map[string]any{
		"kind":         string(t.Kind),
		"job_id":       t.JobID.String(),
		"trace_id":     t.TraceID,
		"submitted_at": t.SubmittedAt.Format(time.RFC3339Nano),
	}
	if len(t.Pages) > 0 {
		b, _ := json.Marshal(t.Pages)
		m["pages"] = string(b)
	}
	if t.Provider != "" {
		m["provider"] = string(t.Provider)
	}
	if t.Attempt > 0 {
		m["attempt"] = strconv.Itoa(t.Attempt)
	}
	return m
}

// taskFromFields rebuilds a task from a stream entry. Values arrive as
// strings regardless of how they were written.
func taskFromFields(values map[string]any) (Task, error) {
	get := func(key string) string {
		v, ok := values[key]
		if !ok {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	var t Task
	t.Kind = TaskKind(get("kind"))
	switch t.Kind {
	case TaskProcessJob, TaskStructureSkipped, TaskReextractPages:
	default:
		return Task{}, fmt.Errorf("unknown task kind %q", get("kind"))
	}

	jobID, err := uuid.Parse(get("job_id"))
	if err != nil {
		return Task{}, fmt.Errorf("invalid job_id: %w", err)
	}
	t.JobID = jobID
	t.TraceID = get("trace_id")

	if raw := get("pages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &t.Pages); err != nil {
			// Older producers wrote comma-separated numbers.
			for _, part := range strings.Split(raw, ",") {
				n, convErr := strconv.Atoi(strings.TrimSpace(part))
				if convErr != nil {
					return Task{}, fmt.Errorf("invalid pages field %q", raw)
				}
				t.Pages = append(t.Pages, n)
			}
		}
	}
	if p := get("provider"); p != "" {
		t.Provider = constants.Provider(p)
	}
	if a := get("attempt"); a != "" {
		if n, err := strconv.Atoi(a); err == nil {
			t.Attempt = n
		}
	}
	if ts := get("submitted_at"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			t.SubmittedAt = parsed
		}
	}
	return t, nil
}
