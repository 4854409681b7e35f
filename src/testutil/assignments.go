package testutil

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/utils"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentStore is an in-memory attendance.AssignmentStore.
type AssignmentStore struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.LabourAssignment

	// BeforeSwap runs before every SwapAttendance call, outside the lock.
	BeforeSwap func(id primitive.ObjectID)
	// SwapErr is consulted before every swap; a non-nil result is returned as is.
	SwapErr func(expected string) error
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{items: map[primitive.ObjectID]models.LabourAssignment{}}
}

var _ attendance.AssignmentStore = (*AssignmentStore)(nil)

func (s *AssignmentStore) Insert(_ context.Context, a *models.LabourAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.items[a.ID] = clone(*a)
	return nil
}

// Get returns a copy of the stored assignment.
func (s *AssignmentStore) Get(id primitive.ObjectID) (models.LabourAssignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	return clone(a), ok
}

func (s *AssignmentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *AssignmentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.LabourAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	if !ok {
		return nil, utils.NotFound("Assignment not found")
	}
	a = clone(a)
	return &a, nil
}

func (s *AssignmentStore) SwapAttendance(_ context.Context, id primitive.ObjectID, expected string, next models.Attendance, status string, now time.Time) (*models.LabourAssignment, error) {
	if s.BeforeSwap != nil {
		s.BeforeSwap(id)
	}
	if s.SwapErr != nil {
		if err := s.SwapErr(expected); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	if !ok || a.AttendanceStatus() != expected {
		return nil, attendance.ErrStaleAttendance
	}
	att := next
	a.Attendance = &att
	a.Status = status
	a.UpdatedAt = now
	s.items[id] = a

	out := clone(a)
	return &out, nil
}

func (s *AssignmentStore) FindByFarmer(_ context.Context, farmerID string) ([]models.LabourAssignment, error) {
	out := s.filter(func(a models.LabourAssignment) bool { return a.FarmerID == farmerID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *AssignmentStore) FindBetween(_ context.Context, from, to time.Time, labourIDs []primitive.ObjectID) ([]models.LabourAssignment, error) {
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range labourIDs {
		wanted[id] = true
	}
	out := s.filter(func(a models.LabourAssignment) bool {
		if len(wanted) > 0 && !wanted[a.LabourID] {
			return false
		}
		return !a.AssignmentDate.Before(from) && !a.AssignmentDate.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (s *AssignmentStore) SummarizeByLabour(_ context.Context, labourIDs []primitive.ObjectID) (map[primitive.ObjectID]models.AttendanceSummary, error) {
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range labourIDs {
		wanted[id] = true
	}
	result := map[primitive.ObjectID]models.AttendanceSummary{}
	for _, a := range s.filter(func(a models.LabourAssignment) bool { return wanted[a.LabourID] }) {
		sum := result[a.LabourID]
		sum.TotalAssignments++
		switch a.AttendanceStatus() {
		case models.AttendancePresent:
			sum.PresentDays++
		case models.AttendanceAbsent:
			sum.AbsentDays++
		default:
			sum.PendingDays++
		}
		result[a.LabourID] = sum
	}
	return result, nil
}

func (s *AssignmentStore) CountPresent(_ context.Context, labourID primitive.ObjectID) (int, error) {
	return len(s.filter(func(a models.LabourAssignment) bool {
		return a.LabourID == labourID && a.AttendanceStatus() == models.AttendancePresent
	})), nil
}

func (s *AssignmentStore) filter(keep func(models.LabourAssignment) bool) []models.LabourAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.LabourAssignment{}
	for _, a := range s.items {
		if keep(a) {
			out = append(out, clone(a))
		}
	}
	return out
}

func clone(a models.LabourAssignment) models.LabourAssignment {
	if a.Attendance != nil {
		att := *a.Attendance
		a.Attendance = &att
	}
	return a
}
