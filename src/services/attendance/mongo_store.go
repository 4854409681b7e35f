package attendance

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssignmentStore เก็บ LabourAssignment ใน collection labourassignments
type MongoAssignmentStore struct {
	coll *mongo.Collection
}

func NewMongoAssignmentStore(coll *mongo.Collection) *MongoAssignmentStore {
	return &MongoAssignmentStore{coll: coll}
}

func (s *MongoAssignmentStore) Insert(ctx context.Context, a *models.LabourAssignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, a); err != nil {
		return utils.Persistence("Failed to save assignment", err)
	}
	return nil
}

func (s *MongoAssignmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LabourAssignment, error) {
	var assignment models.LabourAssignment
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Assignment not found")
		}
		return nil, utils.Persistence("Failed to load assignment", err)
	}
	return &assignment, nil
}

func (s *MongoAssignmentStore) SwapAttendance(
	ctx context.Context,
	id primitive.ObjectID,
	expected string,
	next models.Attendance,
	status string,
	now time.Time,
) (*models.LabourAssignment, error) {
	filter := bson.M{"_id": id, "attendance.status": expected}
	if expected == models.AttendancePending {
		// เอกสารเก่าที่ยังไม่มี attendance ถือว่าเป็น pending
		filter["attendance.status"] = bson.M{"$in": bson.A{models.AttendancePending, nil}}
	}
	update := bson.M{
		"$set": bson.M{
			"attendance": next,
			"status":     status,
			"updatedAt":  now,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.LabourAssignment
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStaleAttendance
		}
		return nil, utils.Persistence("Failed to save attendance", err)
	}
	return &updated, nil
}

func (s *MongoAssignmentStore) FindByFarmer(ctx context.Context, farmerID string) ([]models.LabourAssignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.find(ctx, bson.M{"farmerId": farmerID}, opts)
}

func (s *MongoAssignmentStore) FindBetween(ctx context.Context, from, to time.Time, labourIDs []primitive.ObjectID) ([]models.LabourAssignment, error) {
	filter := bson.M{"assignmentDate": bson.M{"$gte": from, "$lte": to}}
	if len(labourIDs) > 0 {
		filter["labourId"] = bson.M{"$in": labourIDs}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return s.find(ctx, filter, opts)
}

func (s *MongoAssignmentStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LabourAssignment, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.Persistence("Failed to fetch assignments", err)
	}
	defer cursor.Close(ctx)

	assignments := []models.LabourAssignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, utils.Persistence("Failed to decode assignments", err)
	}
	return assignments, nil
}

type labourSummaryRow struct {
	LabourID                 primitive.ObjectID `bson:"_id"`
	models.AttendanceSummary `bson:",inline"`
}

func (s *MongoAssignmentStore) SummarizeByLabour(ctx context.Context, labourIDs []primitive.ObjectID) (map[primitive.ObjectID]models.AttendanceSummary, error) {
	status := bson.M{"$ifNull": bson.A{"$attendance.status", models.AttendancePending}}
	countIf := func(value string) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{status, value}}, 1, 0}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"labourId": bson.M{"$in": labourIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":              "$labourId",
			"totalAssignments": bson.M{"$sum": 1},
			"presentDays":      countIf(models.AttendancePresent),
			"absentDays":       countIf(models.AttendanceAbsent),
			"pendingDays":      countIf(models.AttendancePending),
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.Persistence("Failed to summarize attendance", err)
	}
	defer cursor.Close(ctx)

	var rows []labourSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, utils.Persistence("Failed to decode attendance summary", err)
	}

	result := make(map[primitive.ObjectID]models.AttendanceSummary, len(rows))
	for _, row := range rows {
		result[row.LabourID] = row.AttendanceSummary
	}
	return result, nil
}

func (s *MongoAssignmentStore) CountPresent(ctx context.Context, labourID primitive.ObjectID) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{
		"labourId":          labourID,
		"attendance.status": models.AttendancePresent,
	})
	if err != nil {
		return 0, utils.Persistence("Failed to count present days", err)
	}
	return int(n), nil
}
