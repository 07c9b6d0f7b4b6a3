package ports

import (
	"context"
	"time"
)

// ActivityInput is the DTO passed from task operations to the activity
// pipeline.
type ActivityInput struct {
	TaskID     string
	ActorID    string
	Action     string
	OccurredAt time.Time
}

// ActivityService records a single activity entry. Called from the
// dispatcher workers, never from the request path directly.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
}
