package jobs

import (
	"KisaanPartner-Backend/src/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	charmLog "github.com/charmbracelet/log"
	"github.com/hibiken/asynq"
)

// Reconciler is implemented by the attendance ledger.
type Reconciler interface {
	RecountPresentDays(ctx context.Context, labourID string) (int, error)
	RecountAll(ctx context.Context) (int, error)
}

// HandleReconcilePresentDaysTask นับ totalPresentDays ใหม่ของแรงงานหนึ่งคนหรือทุกคน
func HandleReconcilePresentDaysTask(rec Reconciler, log *charmLog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReconcilePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Error("❌ Payload decode error", "err", err)
			return fmt.Errorf("decode reconcile payload: %v: %w", err, asynq.SkipRetry)
		}

		if payload.LabourID == "" {
			n, err := rec.RecountAll(ctx)
			if err != nil {
				log.Error("❌ Failed to recount present days", "err", err)
				return err
			}
			log.Info("✅ Present days recounted for all labourers", "count", n)
			return nil
		}

		count, err := rec.RecountPresentDays(ctx, payload.LabourID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				// ถูกลบไปแล้ว ไม่ถือว่า error
				log.Warn("⚠️ Labourer not found. Possibly deleted. Skipping task", "labour", payload.LabourID)
				return nil
			}
			log.Error("❌ Failed to recount present days", "labour", payload.LabourID, "err", err)
			return err
		}

		log.Info("✅ Present days recounted", "labour", payload.LabourID, "totalPresentDays", count)
		return nil
	}
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, rec Reconciler, log *charmLog.Logger) {
	mux.HandleFunc(TypeReconcilePresentDays, HandleReconcilePresentDaysTask(rec, log))
}

// asynqLogger ส่ง log ของ asynq server ผ่าน charm logger
type asynqLogger struct {
	log *charmLog.Logger
}

// NewAsynqLogger adapts log to asynq.Logger.
func NewAsynqLogger(log *charmLog.Logger) asynq.Logger {
	return asynqLogger{log: log}
}

func (l asynqLogger) Debug(args ...interface{}) { l.log.Debug(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...interface{})  { l.log.Info(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...interface{})  { l.log.Warn(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...interface{}) { l.log.Error(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...interface{}) { l.log.Fatal(fmt.Sprint(args...)) }
