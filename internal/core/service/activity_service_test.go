package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

type stubActivityRepo struct {
	entries []*domain.Activity
	err     error
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	clone := *a
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]*domain.Activity, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Record(context.Background(), ports.ActivityInput{
		TaskID:     "task_1",
		ActorID:    "user_1",
		Action:     domain.ActionTaskCreated,
		OccurredAt: when,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one persisted entry, got %d", len(repo.entries))
	}
	got := repo.entries[0]
	if got.TaskID != "task_1" || got.ActorID != "user_1" || got.Action != domain.ActionTaskCreated {
		t.Fatalf("entry fields not carried over: %+v", got)
	}
	if !got.OccurredAt.Equal(when) {
		t.Fatalf("occurred_at mismatch: %v", got.OccurredAt)
	}
}

func TestActivityService_Record_RepoError(t *testing.T) {
	repoErr := errors.New("write concern failed")
	svc := NewActivityService(&stubActivityRepo{err: repoErr}, zerolog.Nop())

	err := svc.Record(context.Background(), ports.ActivityInput{TaskID: "task_1", Action: domain.ActionTaskDeleted})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
