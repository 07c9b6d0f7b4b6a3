package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ActivityRecorder is the interface the task service uses to emit activity
// records. The dispatcher implements it; Enqueue never blocks the request
// path beyond channel capacity.
type ActivityRecorder interface {
	Enqueue(in ports.ActivityInput)
}

// TaskService implements task CRUD with per-resource ownership enforcement.
type TaskService struct {
	repo     ports.TaskRepository
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, activity ActivityRecorder, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, activity: activity, log: log}
}

// List returns the principal's tasks. Non-admin principals are always
// scoped to their own tasks; an admin may request the unscoped view with
// the explicit opt-in, and is scoped by default otherwise.
func (s *TaskService) List(ctx context.Context, p domain.Principal, in ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.TaskFilter{OwnerID: p.UserID}
	if p.IsAdmin() && in.All {
		filter.OwnerID = ""
	}
	return s.repo.List(ctx, filter)
}

// Create inserts a new task owned by the principal. Status defaults to
// pending when the payload omitted it.
func (s *TaskService) Create(ctx context.Context, p domain.Principal, in ports.CreateTaskInput) (*domain.Task, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	task := &domain.Task{
		OwnerID:     p.UserID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.activity.Enqueue(ports.ActivityInput{
		TaskID:     created.ID,
		ActorID:    p.UserID,
		Action:     domain.ActionTaskCreated,
		OccurredAt: now,
	})
	s.log.Info().Str("task_id", created.ID).Str("owner_id", p.UserID).Msg("task created")

	return created, nil
}

// Update applies a partial update after the ownership guard passes.
func (s *TaskService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	if err := s.guard(ctx, p, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, ports.TaskUpdate{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Enqueue(ports.ActivityInput{
		TaskID:     id,
		ActorID:    p.UserID,
		Action:     domain.ActionTaskUpdated,
		OccurredAt: time.Now().UTC(),
	})
	s.log.Info().Str("task_id", id).Str("actor_id", p.UserID).Msg("task updated")

	return updated, nil
}

// Delete removes a task after the ownership guard passes.
func (s *TaskService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := s.guard(ctx, p, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Enqueue(ports.ActivityInput{
		TaskID:     id,
		ActorID:    p.UserID,
		Action:     domain.ActionTaskDeleted,
		OccurredAt: time.Now().UTC(),
	})
	s.log.Info().Str("task_id", id).Str("actor_id", p.UserID).Msg("task deleted")

	return nil
}

// guard fetches the target and enforces the ownership rule. The existence
// check runs first: a missing id surfaces NotFound to everyone, identical
// to what a non-owner would see for an id that never existed. Only when
// the task exists and belongs to someone else does the caller get
// ErrNotAuthorized. No store write happens before the guard passes.
func (s *TaskService) guard(ctx context.Context, p domain.Principal, id string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(task.OwnerID) {
		metrics.AuthzDeniedTotal.WithLabelValues("not_owner").Inc()
		s.log.Warn().
			Str("task_id", id).
			Str("actor_id", p.UserID).
			Msg("ownership check rejected")
		return domain.ErrNotAuthorized
	}
	return nil
}
