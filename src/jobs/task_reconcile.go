package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeReconcilePresentDays นับ totalPresentDays ใหม่จาก assignment
const TypeReconcilePresentDays = "labour:reconcile-present-days"

// ReconcilePayload an empty LabourID means every active labourer.
type ReconcilePayload struct {
	LabourID string `json:"labour_id"`
}

func NewReconcilePresentDaysTask(labourID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReconcilePayload{LabourID: labourID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReconcilePresentDays, payload), nil
}
