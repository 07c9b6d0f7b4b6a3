package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity records to a fixed set of workers using
// consistent hashing on the task id, guaranteeing per-task ordering of the
// activity trail. Handlers never wait on persistence.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its task id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.ActivityInput) {
	d.workers[d.shardIndex(in.TaskID)] <- in
}

// shardIndex maps a task id deterministically to a worker index.
func (d *Dispatcher) shardIndex(taskID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("task_id", in.TaskID).
					Str("action", in.Action).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
