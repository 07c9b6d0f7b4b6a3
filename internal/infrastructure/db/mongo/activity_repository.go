package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskforge/task-api/internal/core/domain"
)

const activityCollection = "task_activity"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	TaskID     string             `bson:"task_id"`
	ActorID    string             `bson:"actor_id"`
	Action     string             `bson:"action"`
	OccurredAt time.Time          `bson:"occurred_at"`
	RecordedAt time.Time          `bson:"recorded_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		ID:         primitive.NewObjectID(),
		TaskID:     a.TaskID,
		ActorID:    a.ActorID,
		Action:     a.Action,
		OccurredAt: a.OccurredAt,
		RecordedAt: time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.Activity, 0)
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, &domain.Activity{
			ID:         ma.ID.Hex(),
			TaskID:     ma.TaskID,
			ActorID:    ma.ActorID,
			Action:     ma.Action,
			OccurredAt: ma.OccurredAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
