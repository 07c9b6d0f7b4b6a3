package domain

import "time"

// Activity actions recorded for task mutations.
const (
	ActionTaskCreated = "task_created"
	ActionTaskUpdated = "task_updated"
	ActionTaskDeleted = "task_deleted"
)

// Activity records a single mutation performed on a task.
type Activity struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	TaskID     string    `json:"task_id" bson:"task_id"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	Action     string    `json:"action" bson:"action"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}
