package labours

import (
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// Service จัดการข้อมูลแรงงาน (collection labours)
// และเป็น LabourerDirectory ให้กับ attendance ledger
type Service struct {
	coll  *mongo.Collection
	cache *VillageCache
	log   *charmLog.Logger
	now   func() time.Time
}

func NewService(coll *mongo.Collection, cache *VillageCache, log *charmLog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{coll: coll, cache: cache, log: log, now: time.Now}
}

// Create ลงทะเบียนแรงงานใหม่ (ห้ามเบอร์โทร/อีเมลซ้ำกับแรงงานที่ยัง active)
func (s *Service) Create(ctx context.Context, req models.CreateLabourRequest) (*models.Labour, error) {
	labour, err := newLabour(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, labour); err != nil {
		return nil, err
	}

	labour.ID = primitive.NewObjectID()
	labour.Touch(s.now())

	if _, err := s.coll.InsertOne(ctx, labour); err != nil {
		return nil, utils.Persistence("Failed to create labourer", err)
	}
	s.cache.Invalidate(ctx)

	s.log.Info("✅ Labourer created", "labour", labour.ID.Hex(), "village", labour.VillageName)
	return labour, nil
}

// newLabour ตรวจสอบและแปลง request เป็น Labour
func newLabour(req models.CreateLabourRequest) (*models.Labour, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.VillageName = strings.TrimSpace(req.VillageName)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.VillageName == "" {
		return nil, utils.InvalidInput("Name and village name are required")
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	workTypes := make([]string, 0, len(req.WorkTypes))
	for _, w := range req.WorkTypes {
		if w = strings.TrimSpace(w); w != "" {
			workTypes = append(workTypes, w)
		}
	}

	return &models.Labour{
		Name:          req.Name,
		VillageName:   req.VillageName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		WorkTypes:     workTypes,
		Experience:    strings.TrimSpace(req.Experience),
		Availability:  strings.TrimSpace(req.Availability),
		Address:       strings.TrimSpace(req.Address),
		IsActive:      true,
	}, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return utils.InvalidInput("Invalid input")
	}
	switch verrs[0].Field() {
	case "ContactNumber":
		return utils.InvalidInput("Please enter a valid 10-digit mobile number")
	case "Email":
		return utils.InvalidInput("Please enter a valid email address")
	default:
		return utils.InvalidInput("Invalid value for " + verrs[0].Field())
	}
}

func (s *Service) ensureUnique(ctx context.Context, labour *models.Labour) error {
	checks := []struct {
		field, value, message string
	}{
		{"contactNumber", labour.ContactNumber, "Labourer with this contact number already exists"},
		{"email", labour.Email, "Labourer with this email already exists"},
	}

	for _, check := range checks {
		if check.value == "" {
			continue
		}
		var existing models.Labour
		err := s.coll.FindOne(ctx, bson.M{check.field: check.value, "isActive": true}).Decode(&existing)
		if err == nil {
			return utils.Conflict(check.message)
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return utils.Persistence("Failed to check duplicate labourer", err)
		}
	}
	return nil
}

// List แรงงานที่ active ทั้งหมด กรองด้วยหมู่บ้านหรือคำค้นหา เรียงตามชื่อ
func (s *Service) List(ctx context.Context, filter models.LabourFilter) ([]models.Labour, error) {
	query := bson.M{"isActive": true}

	if village := strings.TrimSpace(filter.VillageName); village != "" {
		query["villageName"] = containsPattern(village)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"villageName": pattern},
			bson.M{"workTypes": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.find(ctx, query, opts)
}

func containsPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func (s *Service) find(ctx context.Context, query bson.M, opts ...*options.FindOptions) ([]models.Labour, error) {
	cursor, err := s.coll.Find(ctx, query, opts...)
	if err != nil {
		return nil, utils.Persistence("Failed to fetch labourers", err)
	}
	defer cursor.Close(ctx)

	labours := []models.Labour{}
	if err := cursor.All(ctx, &labours); err != nil {
		return nil, utils.Persistence("Failed to decode labourers", err)
	}
	return labours, nil
}

// FindByID ดึงแรงงานตาม _id (ไม่สนใจ isActive)
func (s *Service) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Labour, error) {
	var labour models.Labour
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&labour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Labourer not found")
		}
		return nil, utils.Persistence("Failed to load labourer", err)
	}
	return &labour, nil
}

// FindByIDs resolves many labourers at once. Unknown ids are simply absent.
func (s *Service) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Labour, error) {
	result := map[primitive.ObjectID]models.Labour{}
	if len(ids) == 0 {
		return result, nil
	}

	labours, err := s.find(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}})
	if err != nil {
		return nil, err
	}
	for _, l := range labours {
		result[l.ID] = l
	}
	return result, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ActiveIDs returns the ids of every active labourer.
func (s *Service) ActiveIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	labours, err := s.find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(labours))
	for _, l := range labours {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

// Villages รายชื่อหมู่บ้านทั้งหมดของแรงงานที่ active (เรียงตามตัวอักษร)
func (s *Service) Villages(ctx context.Context) ([]string, error) {
	if villages, ok := s.cache.Get(ctx); ok {
		return villages, nil
	}

	raw, err := s.coll.Distinct(ctx, "villageName", bson.M{"isActive": true})
	if err != nil {
		return nil, utils.Persistence("Failed to fetch villages", err)
	}

	villages := make([]string, 0, len(raw))
	for _, v := range raw {
		if name, ok := v.(string); ok {
			villages = append(villages, name)
		}
	}
	sort.Strings(villages)

	s.cache.Set(ctx, villages)
	return villages, nil
}

// Deactivate soft delete (isActive=false)
func (s *Service) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": s.now()}},
	)
	if err != nil {
		return utils.Persistence("Failed to deactivate labourer", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("Labourer not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}

// Delete ลบแรงงานออกถาวร (assignment เดิมยังอยู่)
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.Persistence("Failed to delete labourer", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("Labourer not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}

// IncrementPresentCount เพิ่ม/ลด totalPresentDays แบบ atomic ($inc)
func (s *Service) IncrementPresentCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"totalPresentDays": delta},
			"$set": bson.M{"updatedAt": s.now()},
		},
	)
	if err != nil {
		return utils.Persistence("Failed to update present day count", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("Labourer not found")
	}
	return nil
}

// SetPresentCount overwrites the counter. Only reconciliation calls this.
func (s *Service) SetPresentCount(ctx context.Context, id primitive.ObjectID, count int) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"totalPresentDays": count, "updatedAt": s.now()}},
	)
	if err != nil {
		return utils.Persistence("Failed to set present day count", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("Labourer not found")
	}
	return nil
}
