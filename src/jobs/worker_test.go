package jobs

import (
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/utils"
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconciler struct {
	one    []string
	all    int
	oneErr error
}

func (f *fakeReconciler) RecountPresentDays(_ context.Context, labourID string) (int, error) {
	f.one = append(f.one, labourID)
	return 2, f.oneErr
}

func (f *fakeReconciler) RecountAll(_ context.Context) (int, error) {
	f.all++
	return 5, nil
}

func TestHandleReconcilePresentDaysTask(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	t.Run("one labourer", func(t *testing.T) {
		rec := &fakeReconciler{}
		task, err := NewReconcilePresentDaysTask("665f1c2e8b3e4a0012345678")
		require.NoError(t, err)

		require.NoError(t, HandleReconcilePresentDaysTask(rec, log)(ctx, task))
		assert.Equal(t, []string{"665f1c2e8b3e4a0012345678"}, rec.one)
		assert.Zero(t, rec.all)
	})

	t.Run("every labourer", func(t *testing.T) {
		rec := &fakeReconciler{}
		task, err := NewReconcilePresentDaysTask("")
		require.NoError(t, err)

		require.NoError(t, HandleReconcilePresentDaysTask(rec, log)(ctx, task))
		assert.Equal(t, 1, rec.all)
		assert.Empty(t, rec.one)
	})

	t.Run("deleted labourer is skipped", func(t *testing.T) {
		rec := &fakeReconciler{oneErr: utils.NotFound("Labourer not found")}
		task, _ := NewReconcilePresentDaysTask("665f1c2e8b3e4a0012345678")

		assert.NoError(t, HandleReconcilePresentDaysTask(rec, log)(ctx, task))
	})

	t.Run("store failure is retried", func(t *testing.T) {
		rec := &fakeReconciler{oneErr: utils.Persistence("Failed to count present days", errors.New("timeout"))}
		task, _ := NewReconcilePresentDaysTask("665f1c2e8b3e4a0012345678")

		err := HandleReconcilePresentDaysTask(rec, log)(ctx, task)
		assert.ErrorIs(t, err, utils.ErrPersistence)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		task := asynq.NewTask(TypeReconcilePresentDays, []byte("{not json"))

		err := HandleReconcilePresentDaysTask(&fakeReconciler{}, log)(ctx, task)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestEnqueuerWithoutRedis(t *testing.T) {
	for _, e := range []*Enqueuer{nil, NewEnqueuer(nil)} {
		assert.False(t, e.Available())
		_, err := e.EnqueueReconcile(context.Background(), "x")
		assert.ErrorIs(t, err, ErrQueueUnavailable)
		assert.NoError(t, e.Close())
	}
}

func TestRegisterHandlers(t *testing.T) {
	rec := &fakeReconciler{}
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, rec, logger.Discard())

	task, err := NewReconcilePresentDaysTask("")
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), task))
	assert.Equal(t, 1, rec.all)
}
