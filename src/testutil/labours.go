package testutil

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabourStore is an in-memory labour service. It satisfies both
// attendance.LabourerDirectory and the labour controller's service interface.
type LabourStore struct {
	mu      sync.Mutex
	labours map[primitive.ObjectID]models.Labour
	now     func() time.Time

	// IncrementErr, when set, fails IncrementPresentCount.
	IncrementErr error
}

func NewLabourStore() *LabourStore {
	return &LabourStore{labours: map[primitive.ObjectID]models.Labour{}, now: time.Now}
}

// Add stores l as is (an id is generated when missing) and returns it.
func (s *LabourStore) Add(l models.Labour) models.Labour {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	l.Touch(s.now())
	s.labours[l.ID] = l
	return l
}

// PresentDays returns the stored counter, -1 when the labourer does not exist.
func (s *LabourStore) PresentDays(id primitive.ObjectID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.labours[id]
	if !ok {
		return -1
	}
	return l.TotalPresentDays
}

func (s *LabourStore) Create(_ context.Context, req models.CreateLabourRequest) (*models.Labour, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.VillageName) == "" {
		return nil, utils.InvalidInput("Name and village name are required")
	}

	s.mu.Lock()
	for _, l := range s.labours {
		if !l.IsActive {
			continue
		}
		if req.ContactNumber != "" && l.ContactNumber == req.ContactNumber {
			s.mu.Unlock()
			return nil, utils.Conflict("Labourer with this contact number already exists")
		}
		if req.Email != "" && l.Email == req.Email {
			s.mu.Unlock()
			return nil, utils.Conflict("Labourer with this email already exists")
		}
	}
	s.mu.Unlock()

	l := s.Add(models.Labour{
		Name:          req.Name,
		VillageName:   req.VillageName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		WorkTypes:     req.WorkTypes,
		IsActive:      true,
	})
	return &l, nil
}

func (s *LabourStore) List(_ context.Context, filter models.LabourFilter) ([]models.Labour, error) {
	village := strings.ToLower(filter.VillageName)
	search := strings.ToLower(filter.Search)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Labour{}
	for _, l := range s.labours {
		if !l.IsActive {
			continue
		}
		if village != "" && !strings.Contains(strings.ToLower(l.VillageName), village) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(l.Name+" "+l.VillageName+" "+strings.Join(l.WorkTypes, " ")), search) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *LabourStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Labour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.labours[id]
	if !ok {
		return nil, utils.NotFound("Labourer not found")
	}
	return &l, nil
}

func (s *LabourStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Labour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[primitive.ObjectID]models.Labour{}
	for _, id := range ids {
		if l, ok := s.labours[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (s *LabourStore) ActiveIDs(_ context.Context) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []primitive.ObjectID{}
	for id, l := range s.labours {
		if l.IsActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *LabourStore) Villages(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, l := range s.labours {
		if l.IsActive && !seen[l.VillageName] {
			seen[l.VillageName] = true
			out = append(out, l.VillageName)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *LabourStore) Seed(ctx context.Context) ([]models.Labour, error) {
	s.mu.Lock()
	n := len(s.labours)
	s.mu.Unlock()
	if n > 0 {
		return nil, utils.Conflict("Labour data already exists. Use POST /labour to add individual labourers.")
	}
	out := []models.Labour{
		s.Add(models.Labour{Name: "Ramesh Kumar", VillageName: "Rampur", ContactNumber: "9876543210", IsActive: true}),
		s.Add(models.Labour{Name: "Suresh Patel", VillageName: "Shivpur", ContactNumber: "9876543211", IsActive: true}),
	}
	return out, nil
}

func (s *LabourStore) Deactivate(_ context.Context, id primitive.ObjectID) error {
	return s.update(id, func(l *models.Labour) { l.IsActive = false })
}

func (s *LabourStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labours[id]; !ok {
		return utils.NotFound("Labourer not found")
	}
	delete(s.labours, id)
	return nil
}

func (s *LabourStore) IncrementPresentCount(_ context.Context, id primitive.ObjectID, delta int) error {
	if s.IncrementErr != nil {
		return s.IncrementErr
	}
	return s.update(id, func(l *models.Labour) { l.TotalPresentDays += delta })
}

func (s *LabourStore) SetPresentCount(_ context.Context, id primitive.ObjectID, count int) error {
	return s.update(id, func(l *models.Labour) { l.TotalPresentDays = count })
}

func (s *LabourStore) update(id primitive.ObjectID, fn func(*models.Labour)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.labours[id]
	if !ok {
		return utils.NotFound("Labourer not found")
	}
	fn(&l)
	l.Touch(s.now())
	s.labours[id] = l
	return nil
}
