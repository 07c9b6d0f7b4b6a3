package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	tasks map[string]*domain.Task
	seq   int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.seq++
	clone := *t
	clone.ID = fmt.Sprintf("task_%d", r.seq)
	r.tasks[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if filter.OwnerID != "" && t.OwnerID != filter.OwnerID {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id string, update ports.TaskUpdate) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

// stubRecorder captures enqueued activity records synchronously.
type stubRecorder struct {
	records []ports.ActivityInput
}

func (s *stubRecorder) Enqueue(in ports.ActivityInput) {
	s.records = append(s.records, in)
}

func newTaskService(repo ports.TaskRepository) (*TaskService, *stubRecorder) {
	rec := &stubRecorder{}
	return NewTaskService(repo, rec, zerolog.Nop()), rec
}

var (
	owner = domain.Principal{UserID: "user_1", Role: domain.RoleUser}
	other = domain.Principal{UserID: "user_2", Role: domain.RoleUser}
	admin = domain.Principal{UserID: "user_9", Role: domain.RoleAdmin}
)

func seedTask(t *testing.T, svc *TaskService, p domain.Principal, title string) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), p, ports.CreateTaskInput{Title: title})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTaskService_Create_DefaultsAndOwner(t *testing.T) {
	svc, rec := newTaskService(newStubTaskRepo())

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "Fix bug"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.StatusPending {
		t.Fatalf("expected status to default to pending, got %s", task.Status)
	}
	if task.OwnerID != owner.UserID {
		t.Fatalf("expected owner %s, got %s", owner.UserID, task.OwnerID)
	}
	if len(rec.records) != 1 || rec.records[0].Action != domain.ActionTaskCreated {
		t.Fatalf("expected one task_created activity, got %+v", rec.records)
	}
}

func TestTaskService_Create_ExplicitStatus(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:  "Write docs",
		Status: domain.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.StatusInProgress {
		t.Fatalf("expected in-progress, got %s", task.Status)
	}
}

// ---------------------------------------------------------------------------
// List scoping
// ---------------------------------------------------------------------------

func TestTaskService_List_ScopedToOwner(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())
	seedTask(t, svc, owner, "mine")
	seedTask(t, svc, other, "theirs")

	tasks, err := svc.List(context.Background(), owner, ports.ListTasksInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].OwnerID != owner.UserID {
		t.Fatalf("expected only owner's tasks, got %+v", tasks)
	}
}

func TestTaskService_List_NonAdminAllIgnored(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())
	seedTask(t, svc, owner, "mine")
	seedTask(t, svc, other, "theirs")

	// The unscoped opt-in is honored only for admins.
	tasks, err := svc.List(context.Background(), owner, ports.ListTasksInput{All: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected all=true to be ignored for non-admin, got %d tasks", len(tasks))
	}
}

func TestTaskService_List_AdminScopedByDefault(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())
	seedTask(t, svc, owner, "users")
	seedTask(t, svc, admin, "admins own")

	tasks, err := svc.List(context.Background(), admin, ports.ListTasksInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].OwnerID != admin.UserID {
		t.Fatalf("expected admin scoped to own tasks without opt-in, got %+v", tasks)
	}
}

func TestTaskService_List_AdminUnscopedOptIn(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())
	seedTask(t, svc, owner, "users")
	seedTask(t, svc, other, "others")

	tasks, err := svc.List(context.Background(), admin, ports.ListTasksInput{All: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected unscoped listing, got %d tasks", len(tasks))
	}
}

// ---------------------------------------------------------------------------
// Ownership guard
// ---------------------------------------------------------------------------

func TestTaskService_Update_Owner(t *testing.T) {
	svc, rec := newTaskService(newStubTaskRepo())
	task := seedTask(t, svc, owner, "old title")

	title := "new title"
	updated, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "new title" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if rec.records[len(rec.records)-1].Action != domain.ActionTaskUpdated {
		t.Fatalf("expected task_updated activity")
	}
}

func TestTaskService_Update_NonOwnerRejected(t *testing.T) {
	repo := newStubTaskRepo()
	svc, rec := newTaskService(repo)
	task := seedTask(t, svc, owner, "locked")

	title := "hijack"
	if _, err := svc.Update(context.Background(), other, task.ID, ports.UpdateTaskInput{Title: &title}); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.tasks[task.ID].Title != "locked" {
		t.Fatalf("task must not be mutated by a rejected update")
	}
	if rec.records[len(rec.records)-1].Action != domain.ActionTaskCreated {
		t.Fatalf("no activity must be recorded for a rejected update")
	}
}

func TestTaskService_Update_AdminOverride(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())
	task := seedTask(t, svc, owner, "anyone's")

	status := domain.StatusCompleted
	updated, err := svc.Update(context.Background(), admin, task.ID, ports.UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status not updated: %+v", updated)
	}
}

func TestTaskService_Update_MissingTask(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())

	title := "x"
	if _, err := svc.Update(context.Background(), owner, "task_404", ports.UpdateTaskInput{Title: &title}); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Delete_Owner(t *testing.T) {
	repo := newStubTaskRepo()
	svc, rec := newTaskService(repo)
	task := seedTask(t, svc, owner, "done with this")

	if err := svc.Delete(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.tasks[task.ID]; ok {
		t.Fatalf("task not removed")
	}
	if rec.records[len(rec.records)-1].Action != domain.ActionTaskDeleted {
		t.Fatalf("expected task_deleted activity")
	}
}

func TestTaskService_Delete_NonOwnerRejected(t *testing.T) {
	repo := newStubTaskRepo()
	svc, _ := newTaskService(repo)
	task := seedTask(t, svc, owner, "keep")

	if err := svc.Delete(context.Background(), other, task.ID); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if _, ok := repo.tasks[task.ID]; !ok {
		t.Fatalf("task must remain present after rejected delete")
	}
}

func TestTaskService_Delete_AdminOverride(t *testing.T) {
	repo := newStubTaskRepo()
	svc, _ := newTaskService(repo)
	task := seedTask(t, svc, owner, "moderated away")

	if err := svc.Delete(context.Background(), admin, task.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := repo.tasks[task.ID]; ok {
		t.Fatalf("task not removed")
	}
}

func TestTaskService_Delete_MissingBeforeOwnership(t *testing.T) {
	svc, _ := newTaskService(newStubTaskRepo())

	// Existence is checked first: a missing id is NotFound for everyone,
	// owner and stranger alike.
	if err := svc.Delete(context.Background(), other, "task_404"); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
