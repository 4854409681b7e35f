package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ErrQueueUnavailable is returned when Redis/asynq was not configured.
var ErrQueueUnavailable = errors.New("task queue not configured")

// Enqueuer ส่งงาน reconcile เข้าคิว asynq
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// Available reports whether tasks can be queued.
func (e *Enqueuer) Available() bool {
	return e != nil && e.client != nil
}

// EnqueueReconcile returns the id of the queued task.
func (e *Enqueuer) EnqueueReconcile(ctx context.Context, labourID string) (string, error) {
	if !e.Available() {
		return "", ErrQueueUnavailable
	}

	task, err := NewReconcilePresentDaysTask(labourID)
	if err != nil {
		return "", err
	}

	scope := labourID
	if scope == "" {
		scope = "all"
	}
	info, err := e.client.EnqueueContext(ctx, task,
		asynq.TaskID(fmt.Sprintf("reconcile-%s-%s", scope, uuid.NewString())),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return "", fmt.Errorf("enqueue reconcile task: %w", err)
	}
	return info.ID, nil
}

// Close ปิด asynq client (ถ้ามี)
func (e *Enqueuer) Close() error {
	if !e.Available() {
		return nil
	}
	return e.client.Close()
}
