package labours

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var sampleLabourers = []models.CreateLabourRequest{
	{
		Name:          "Ramesh Kumar",
		VillageName:   "Village A",
		ContactNumber: "9876543210",
		Email:         "ramesh@example.com",
		WorkTypes:     []string{"Plowing", "Harvesting", "Sowing"},
		Experience:    "10 years of experience in agriculture",
		Availability:  "Available Monday to Saturday",
		Address:       "Village A, Block B, District C",
	},
	{
		Name:          "Suresh Singh",
		VillageName:   "Village A",
		ContactNumber: "9876543211",
		WorkTypes:     []string{"Weeding", "Irrigation", "Fertilizer Application"},
		Experience:    "7 years",
		Availability:  "Available all week",
		Address:       "Village A, Block B, District C",
	},
	{
		Name:          "Amit Patel",
		VillageName:   "Village B",
		ContactNumber: "9876543212",
		Email:         "amit@example.com",
		WorkTypes:     []string{"Harvesting", "Plowing"},
		Experience:    "5 years in agricultural work",
		Availability:  "Available Monday to Friday",
		Address:       "Village B, Block A, District C",
	},
	{
		Name:          "Rajesh Verma",
		VillageName:   "Village B",
		ContactNumber: "9876543213",
		WorkTypes:     []string{"Sowing", "Weeding", "Plowing"},
		Experience:    "8 years",
		Availability:  "Available all week",
		Address:       "Village B, Block A, District C",
	},
	{
		Name:          "Mohan Das",
		VillageName:   "Village C",
		ContactNumber: "9876543214",
		Email:         "mohan@example.com",
		WorkTypes:     []string{"Harvesting", "Irrigation"},
		Experience:    "12 years of farming experience",
		Availability:  "Available Monday to Saturday",
		Address:       "Village C, Block C, District C",
	},
	{
		Name:          "Vikram Singh",
		VillageName:   "Village C",
		ContactNumber: "9876543215",
		WorkTypes:     []string{"Plowing", "Sowing", "Fertilizer Application"},
		Experience:    "6 years",
		Availability:  "Available all week",
		Address:       "Village C, Block C, District C",
	},
}

// Seed เพิ่มข้อมูลแรงงานตัวอย่าง (ใช้ได้เฉพาะตอนที่ยังไม่มีข้อมูล)
func (s *Service) Seed(ctx context.Context) ([]models.Labour, error) {
	existing, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, utils.Persistence("Failed to count labourers", err)
	}
	if existing > 0 {
		return nil, utils.Conflict("Labour data already exists. Use POST /labour to add individual labourers.")
	}

	now := s.now()
	labours := make([]models.Labour, 0, len(sampleLabourers))
	docs := make([]interface{}, 0, len(sampleLabourers))
	for _, req := range sampleLabourers {
		labour, err := newLabour(req)
		if err != nil {
			return nil, err
		}
		labour.ID = primitive.NewObjectID()
		labour.Touch(now)
		labours = append(labours, *labour)
		docs = append(docs, labour)
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return nil, utils.Persistence("Failed to seed labourers", err)
	}
	s.cache.Invalidate(ctx)

	s.log.Info("✅ Seeded sample labourers", "count", len(labours))
	return labours, nil
}
