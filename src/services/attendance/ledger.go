package attendance

import (
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"errors"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxSwapAttempts bounds the re-read/retry loop of SetAttendance when another
// request changes the same assignment between our read and our write.
const maxSwapAttempts = 5

// ErrStaleAttendance is returned by AssignmentStore.SwapAttendance when the
// stored attendance status no longer equals the expected one.
var ErrStaleAttendance = errors.New("attendance status changed since it was read")

// AssignmentStore persistence ของ LabourAssignment
type AssignmentStore interface {
	Insert(ctx context.Context, a *models.LabourAssignment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LabourAssignment, error)
	// SwapAttendance writes attendance, status and updatedAt only if the stored
	// attendance status equals expected (a missing attendance counts as pending).
	SwapAttendance(ctx context.Context, id primitive.ObjectID, expected string, next models.Attendance, status string, now time.Time) (*models.LabourAssignment, error)
	FindByFarmer(ctx context.Context, farmerID string) ([]models.LabourAssignment, error)
	// FindBetween returns assignments dated within [from, to], oldest created first.
	FindBetween(ctx context.Context, from, to time.Time, labourIDs []primitive.ObjectID) ([]models.LabourAssignment, error)
	SummarizeByLabour(ctx context.Context, labourIDs []primitive.ObjectID) (map[primitive.ObjectID]models.AttendanceSummary, error)
	CountPresent(ctx context.Context, labourID primitive.ObjectID) (int, error)
}

// LabourerDirectory is what the ledger needs from the labour service.
type LabourerDirectory interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Labour, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Labour, error)
	ActiveIDs(ctx context.Context) ([]primitive.ObjectID, error)
	IncrementPresentCount(ctx context.Context, id primitive.ObjectID, delta int) error
	SetPresentCount(ctx context.Context, id primitive.ObjectID, count int) error
}

// ReconcileEnqueuer schedules a recount of a labourer's present days.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, labourID string) (string, error)
}

// AssignmentInput ข้อมูลสำหรับสร้างการมอบหมายงาน
type AssignmentInput struct {
	LabourID       string
	FarmerID       string
	AssignmentDate *time.Time
	Notes          string
}

// AttendanceInput ข้อมูลสำหรับเช็คชื่อ
type AttendanceInput struct {
	Status string
	Date   *time.Time
	Time   string
	Notes  string
}

// Ledger owns assignments and keeps Labour.TotalPresentDays equal to the
// number of the labourer's assignments whose attendance is present.
type Ledger struct {
	assignments AssignmentStore
	labours     LabourerDirectory
	reconciler  ReconcileEnqueuer
	log         *charmLog.Logger
	now         func() time.Time
	loc         *time.Location
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) { l.loc = loc }
}

func WithLogger(log *charmLog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

func WithReconciler(r ReconcileEnqueuer) Option {
	return func(l *Ledger) { l.reconciler = r }
}

func NewLedger(assignments AssignmentStore, labours LabourerDirectory, opts ...Option) *Ledger {
	l := &Ledger{
		assignments: assignments,
		labours:     labours,
		log:         logger.Discard(),
		now:         time.Now,
		loc:         time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Location is the zone used for "today" and for the HH:MM attendance time.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// CreateAssignment มอบหมายแรงงานให้เกษตรกร (status=assigned, attendance=pending)
func (l *Ledger) CreateAssignment(ctx context.Context, in AssignmentInput) (*models.LabourAssignment, error) {
	farmerID := strings.TrimSpace(in.FarmerID)
	if farmerID == "" {
		return nil, utils.InvalidInput("Farmer ID is required")
	}

	labourID, err := utils.ParseObjectID(in.LabourID, "Labourer not found")
	if err != nil {
		return nil, err
	}
	if _, err := l.labours.FindByID(ctx, labourID); err != nil {
		return nil, err
	}

	now := l.now()
	assignmentDate := now
	if in.AssignmentDate != nil {
		assignmentDate = *in.AssignmentDate
	}

	assignment := &models.LabourAssignment{
		ID:             primitive.NewObjectID(),
		LabourID:       labourID,
		FarmerID:       farmerID,
		AssignmentDate: assignmentDate,
		Status:         models.AssignmentStatusAssigned,
		Attendance:     &models.Attendance{Status: models.AttendancePending},
		Notes:          strings.TrimSpace(in.Notes),
	}
	assignment.Touch(now)

	if err := l.assignments.Insert(ctx, assignment); err != nil {
		return nil, err
	}

	l.log.Info("✅ Labourer assigned", "assignment", assignment.ID.Hex(), "labour", labourID.Hex(), "farmer", farmerID)
	return assignment, nil
}

// SetAttendance records present/absent on an assignment and moves the
// labourer's present-day counter by the resulting delta.
//
// The read of the previous status and the overwrite happen as one
// conditional update keyed on that previous status, so of several concurrent
// callers exactly one observes each transition and applies its delta.
func (l *Ledger) SetAttendance(ctx context.Context, assignmentID string, in AttendanceInput) (*models.LabourAssignment, error) {
	status, err := normalizeSettableStatus(in.Status)
	if err != nil {
		return nil, err
	}

	id, err := utils.ParseObjectID(assignmentID, "Assignment not found")
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxSwapAttempts; attempt++ {
		current, err := l.assignments.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		previous := current.AttendanceStatus()

		now := l.now()
		next := l.buildAttendance(status, in, now)

		updated, err := l.assignments.SwapAttendance(ctx, id, previous, next, models.AssignmentStatusConfirmed, now)
		if errors.Is(err, ErrStaleAttendance) {
			l.log.Debug("attendance changed concurrently, retrying", "assignment", id.Hex(), "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		delta := attendanceDelta(previous, status)
		if delta != 0 {
			if err := l.labours.IncrementPresentCount(ctx, current.LabourID, delta); err != nil {
				l.rollback(ctx, current, status)
				return nil, asServiceError(err, "Failed to update present day count")
			}
		}

		l.log.Info("✅ Attendance confirmed",
			"assignment", id.Hex(), "labour", current.LabourID.Hex(),
			"from", previous, "to", status, "delta", delta)
		return updated, nil
	}

	return nil, utils.ConcurrentUpdate("Attendance was changed by another request, please retry")
}

// rollback puts the assignment back to what it was before our swap. If that
// fails too the counter may have drifted and a recount is scheduled.
func (l *Ledger) rollback(ctx context.Context, before *models.LabourAssignment, applied string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	previous := models.Attendance{Status: models.AttendancePending}
	if before.Attendance != nil {
		previous = *before.Attendance
	}

	_, err := l.assignments.SwapAttendance(ctx, before.ID, applied, previous, before.Status, l.now())
	if err == nil {
		l.log.Warn("⚠️ Attendance rolled back after counter update failure", "assignment", before.ID.Hex())
		return
	}

	l.log.Error("❌ Attendance rollback failed, present day count may drift",
		"assignment", before.ID.Hex(), "labour", before.LabourID.Hex(), "err", err)
	if l.reconciler == nil {
		return
	}
	if taskID, err := l.reconciler.EnqueueReconcile(ctx, before.LabourID.Hex()); err != nil {
		l.log.Error("❌ Failed to enqueue present day recount", "labour", before.LabourID.Hex(), "err", err)
	} else {
		l.log.Info("Present day recount enqueued", "labour", before.LabourID.Hex(), "task", taskID)
	}
}

func (l *Ledger) buildAttendance(status string, in AttendanceInput, now time.Time) models.Attendance {
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	clock := strings.TrimSpace(in.Time)
	if clock == "" {
		clock = now.In(l.loc).Format("15:04")
	}
	confirmedAt := now

	return models.Attendance{
		Status:      status,
		Date:        &date,
		Time:        clock,
		Notes:       strings.TrimSpace(in.Notes),
		ConfirmedAt: &confirmedAt,
	}
}

// GetAssignment ดึง assignment พร้อมข้อมูลแรงงาน
func (l *Ledger) GetAssignment(ctx context.Context, assignmentID string) (*models.AssignmentWithLabour, error) {
	id, err := utils.ParseObjectID(assignmentID, "Assignment not found")
	if err != nil {
		return nil, err
	}

	assignment, err := l.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.AssignmentWithLabour{LabourAssignment: *assignment}
	labour, err := l.labours.FindByID(ctx, assignment.LabourID)
	switch {
	case err == nil:
		result.Labour = labour
	case errors.Is(err, utils.ErrNotFound):
		// labourer was hard-deleted; the assignment is still returned
	default:
		return nil, err
	}
	return result, nil
}

// ListAssignmentsByFarmer returns the farmer's assignments, newest first.
func (l *Ledger) ListAssignmentsByFarmer(ctx context.Context, farmerID string) ([]models.AssignmentWithLabour, error) {
	assignments, err := l.assignments.FindByFarmer(ctx, strings.TrimSpace(farmerID))
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.LabourID)
	}
	labours, err := l.labours.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.AssignmentWithLabour, 0, len(assignments))
	for _, a := range assignments {
		item := models.AssignmentWithLabour{LabourAssignment: a}
		if labour, ok := labours[a.LabourID]; ok {
			item.Labour = &labour
		}
		result = append(result, item)
	}
	return result, nil
}

// TodayAttendance returns present/absent/pending for every labourer that has
// an assignment dated today. Labourers without one have no entry.
// When a labourer has several assignments today the most recently created wins.
func (l *Ledger) TodayAttendance(ctx context.Context, labourIDs []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if len(labourIDs) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}
	from, to := dayBounds(l.now(), l.loc)

	assignments, err := l.assignments.FindBetween(ctx, from, to, labourIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[primitive.ObjectID]string, len(assignments))
	for _, a := range assignments {
		status := a.AttendanceStatus()
		if status != models.AttendancePresent && status != models.AttendanceAbsent {
			status = models.AttendancePending
		}
		result[a.LabourID] = status
	}
	return result, nil
}

// SummarizeAttendance นับจำนวน assignment ของแรงงานแต่ละคนแยกตามสถานะ
func (l *Ledger) SummarizeAttendance(ctx context.Context, labourIDs []primitive.ObjectID) (map[primitive.ObjectID]models.AttendanceSummary, error) {
	if len(labourIDs) == 0 {
		return map[primitive.ObjectID]models.AttendanceSummary{}, nil
	}
	return l.assignments.SummarizeByLabour(ctx, labourIDs)
}

// RecountPresentDays rebuilds the labourer's counter from assignment records.
func (l *Ledger) RecountPresentDays(ctx context.Context, labourID string) (int, error) {
	id, err := utils.ParseObjectID(labourID, "Labourer not found")
	if err != nil {
		return 0, err
	}
	if _, err := l.labours.FindByID(ctx, id); err != nil {
		return 0, err
	}

	count, err := l.assignments.CountPresent(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := l.labours.SetPresentCount(ctx, id, count); err != nil {
		return 0, err
	}

	l.log.Info("✅ Present days recounted", "labour", id.Hex(), "totalPresentDays", count)
	return count, nil
}

// RecountAll recounts every active labourer and returns how many were updated.
func (l *Ledger) RecountAll(ctx context.Context) (int, error) {
	ids, err := l.labours.ActiveIDs(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		if _, err := l.RecountPresentDays(ctx, id.Hex()); err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func asServiceError(err error, message string) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return utils.Persistence(message, err)
}
