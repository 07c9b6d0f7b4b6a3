package handler

import "github.com/taskforge/task-api/internal/core/domain"

// createTaskRequest is the declarative schema for POST /tasks.
type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

// ApplyDefaults assigns the default status when the payload omitted it.
func (r *createTaskRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = string(domain.StatusPending)
	}
}

// updateTaskRequest is the declarative schema for PUT /tasks/:id. Nil
// pointers distinguish "field absent" from "field set to empty".
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

// ObjectRules enforces the whole-object constraint: an update must carry
// at least one field. Checked in addition to the per-field rules, before
// identity checks run.
func (r *updateTaskRequest) ObjectRules() []string {
	if r.Title == nil && r.Description == nil && r.Status == nil {
		return []string{"at least one field required"}
	}
	return nil
}

func CreateTaskPayload() any { return new(createTaskRequest) }
func UpdateTaskPayload() any { return new(updateTaskRequest) }

type deleteTaskResponse struct {
	Message string `json:"message"`
}
