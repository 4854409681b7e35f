package database

import (
	"context"
	"fmt"
	"time"

	charmLog "github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อ collection (ตรงกับที่ mongoose ใช้ในระบบเดิม)
const (
	LabourCollectionName     = "labours"
	AssignmentCollectionName = "labourassignments"
	EmployeeCollectionName   = "employees"
)

// Store เป็นเจ้าของ MongoDB client หนึ่งตัว เปิดตอน startup และปิดตอน shutdown
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *charmLog.Logger

	LabourCollection     *mongo.Collection
	AssignmentCollection *mongo.Collection
	EmployeeCollection   *mongo.Collection
}

// ConnectMongoDB เชื่อมต่อกับ MongoDB และตรวจสอบด้วย ping
func ConnectMongoDB(ctx context.Context, uri, dbName string, log *charmLog.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("✅ MongoDB connected successfully", "database", dbName)
	return NewStore(client, client.Database(dbName), log), nil
}

// NewStore wires collections on an already connected database.
func NewStore(client *mongo.Client, db *mongo.Database, log *charmLog.Logger) *Store {
	return &Store{
		client:               client,
		db:                   db,
		log:                  log,
		LabourCollection:     db.Collection(LabourCollectionName),
		AssignmentCollection: db.Collection(AssignmentCollectionName),
		EmployeeCollection:   db.Collection(EmployeeCollectionName),
	}
}

// EnsureIndexes สร้าง index ที่ query หลักต้องใช้
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[*mongo.Collection][]mongo.IndexModel{
		s.LabourCollection: {
			{Keys: bson.D{{Key: "villageName", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		s.AssignmentCollection: {
			{Keys: bson.D{{Key: "labourId", Value: 1}, {Key: "farmerId", Value: 1}}},
			{Keys: bson.D{{Key: "farmerId", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "assignmentDate", Value: 1}}},
		},
		s.EmployeeCollection: {
			{Keys: bson.D{{Key: "personalDetails.email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "personalDetails.mobileNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "employmentDetails.employeeId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "employmentDetails.department", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll.Name(), err)
		}
	}
	s.log.Info("✅ MongoDB indexes ensured")
	return nil
}

// Close ปิดการเชื่อมต่อ
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	s.log.Info("MongoDB disconnected")
	return nil
}

// Ping ใช้กับ /health
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
