package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists activity
// entries to the repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single activity entry.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.Activity{
		TaskID:     in.TaskID,
		ActorID:    in.ActorID,
		Action:     in.Action,
		OccurredAt: in.OccurredAt,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(in.Action).Inc()
	s.log.Debug().
		Str("task_id", in.TaskID).
		Str("action", in.Action).
		Msg("activity recorded")

	return nil
}
