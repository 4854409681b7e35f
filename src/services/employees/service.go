package employees

import (
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"errors"
	"regexp"
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

// Service จัดการข้อมูลพนักงาน (collection employees)
type Service struct {
	coll *mongo.Collection
	log  *charmLog.Logger
	now  func() time.Time
}

func NewService(coll *mongo.Collection, log *charmLog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{coll: coll, log: log, now: time.Now}
}

// Register ลงทะเบียนพนักงานใหม่
func (s *Service) Register(ctx context.Context, req models.RegisterEmployeeRequest) (*models.Employee, error) {
	if req.PersonalDetails == nil || req.EmploymentDetails == nil || req.IdentityAndCompliance == nil || req.BankingDetails == nil {
		return nil, utils.InvalidInput("All field groups are required: personalDetails, employmentDetails, identityAndCompliance, bankingDetails")
	}

	employee := &models.Employee{
		PersonalDetails:       *req.PersonalDetails,
		EmploymentDetails:     *req.EmploymentDetails,
		IdentityAndCompliance: *req.IdentityAndCompliance,
		BankingDetails:        *req.BankingDetails,
		IsActive:              true,
	}
	normalize(employee)
	if err := check(employee); err != nil {
		return nil, err
	}

	duplicates := []struct {
		field, value, message string
	}{
		{"personalDetails.email", employee.PersonalDetails.Email, "Employee with this email already exists"},
		{"personalDetails.mobileNumber", employee.PersonalDetails.MobileNumber, "Employee with this mobile number already exists"},
		{"employmentDetails.employeeId", employee.EmploymentDetails.EmployeeID, "Employee with this employee ID already exists"},
	}
	for _, d := range duplicates {
		exists, err := s.exists(ctx, bson.M{d.field: d.value})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.Conflict(d.message)
		}
	}

	employee.ID = primitive.NewObjectID()
	employee.Touch(s.now())

	if _, err := s.coll.InsertOne(ctx, employee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("Employee already exists")
		}
		return nil, utils.Persistence("Failed to register employee", err)
	}

	s.log.Info("✅ Employee registered", "employee", employee.ID.Hex(), "employeeId", employee.EmploymentDetails.EmployeeID)
	return employee, nil
}

// normalize ทำ trim / lowercase / uppercase ตามรูปแบบของแต่ละ field
func normalize(e *models.Employee) {
	p := &e.PersonalDetails
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))
	p.MobileNumber = strings.TrimSpace(p.MobileNumber)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.VillageName = strings.TrimSpace(p.VillageName)
	p.Address = strings.TrimSpace(p.Address)

	m := &e.EmploymentDetails
	m.EmployeeID = strings.ToUpper(strings.TrimSpace(m.EmployeeID))
	m.Department = strings.TrimSpace(m.Department)
	m.Designation = strings.TrimSpace(m.Designation)
	m.EmploymentType = strings.ToLower(strings.TrimSpace(m.EmploymentType))
	m.ReportingManager = strings.TrimSpace(m.ReportingManager)

	k := &e.IdentityAndCompliance
	k.PanNumber = strings.ToUpper(strings.TrimSpace(k.PanNumber))
	k.PassportNumber = strings.ToUpper(strings.TrimSpace(k.PassportNumber))
	k.VerificationStatus = strings.ToLower(strings.TrimSpace(k.VerificationStatus))
	if k.VerificationStatus == "" {
		k.VerificationStatus = "pending"
	}

	b := &e.BankingDetails
	b.BankName = strings.TrimSpace(b.BankName)
	b.AccountHolderName = strings.TrimSpace(b.AccountHolderName)
	b.IfscCode = strings.ToUpper(strings.TrimSpace(b.IfscCode))
}

// check validates required fields and enums only.
func check(e *models.Employee) error {
	if err := validate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return utils.InvalidInput(verrs[0].Namespace() + " failed on '" + verrs[0].Tag() + "'")
		}
		return utils.InvalidInput("Invalid employee data")
	}
	if e.PersonalDetails.DateOfBirth.IsZero() {
		return utils.InvalidInput("Date of birth is required")
	}
	if e.EmploymentDetails.DateOfJoining.IsZero() {
		return utils.InvalidInput("Date of joining is required")
	}
	return nil
}

func (s *Service) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := s.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, utils.Persistence("Failed to check duplicate employee", err)
}

// List พนักงานแบบแบ่งหน้า พร้อมตัวกรองและคำค้นหา
func (s *Service) List(ctx context.Context, params models.PaginationParams, filter models.EmployeeFilter) ([]models.Employee, int64, error) {
	params.Normalize()
	query := bson.M{}

	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if filter.Department != "" {
		query["employmentDetails.department"] = filter.Department
	}
	if filter.EmploymentType != "" {
		query["employmentDetails.employmentType"] = filter.EmploymentType
	}
	if filter.VerificationStatus != "" {
		query["identityAndCompliance.verificationStatus"] = filter.VerificationStatus
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"personalDetails.firstName": pattern},
			bson.M{"personalDetails.lastName": pattern},
			bson.M{"employmentDetails.employeeId": pattern},
		}
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, utils.Persistence("Failed to fetch employees", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, 0, utils.Persistence("Failed to decode employees", err)
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, utils.Persistence("Failed to count employees", err)
	}
	return employees, total, nil
}

// FindByID ดึงพนักงานตาม _id
func (s *Service) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// FindByEmployeeID ดึงพนักงานตามรหัสพนักงาน
func (s *Service) FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.findOne(ctx, bson.M{"employmentDetails.employeeId": strings.ToUpper(strings.TrimSpace(employeeID))})
}

func (s *Service) findOne(ctx context.Context, filter bson.M) (*models.Employee, error) {
	var employee models.Employee
	if err := s.coll.FindOne(ctx, filter).Decode(&employee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Employee not found")
		}
		return nil, utils.Persistence("Failed to load employee", err)
	}
	return &employee, nil
}

// Update แก้ไขข้อมูลพนักงานเฉพาะกลุ่มที่ส่งมา
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PersonalDetails != nil {
		current.PersonalDetails = *req.PersonalDetails
	}
	if req.EmploymentDetails != nil {
		current.EmploymentDetails = *req.EmploymentDetails
	}
	if req.IdentityAndCompliance != nil {
		current.IdentityAndCompliance = *req.IdentityAndCompliance
	}
	if req.BankingDetails != nil {
		current.BankingDetails = *req.BankingDetails
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}
	current.Touch(s.now())
	normalize(current)
	if err := check(current); err != nil {
		return nil, err
	}

	if req.EmploymentDetails != nil {
		taken, err := s.exists(ctx, bson.M{
			"employmentDetails.employeeId": current.EmploymentDetails.EmployeeID,
			"_id":                          bson.M{"$ne": id},
		})
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.Conflict("Employee ID already exists")
		}
	}

	var updated models.Employee
	err = s.coll.FindOneAndReplace(ctx, bson.M{"_id": id}, current,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Employee not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("Employee with these details already exists")
		}
		return nil, utils.Persistence("Failed to update employee", err)
	}
	return &updated, nil
}

// Deactivate soft delete
func (s *Service) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": s.now()}},
	)
	if err != nil {
		return utils.Persistence("Failed to deactivate employee", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("Employee not found")
	}
	return nil
}

// Delete ลบพนักงานถาวร
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.Persistence("Failed to delete employee", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("Employee not found")
	}
	return nil
}

// Stats สถิติพนักงานแยกตามแผนก ประเภทการจ้าง และสถานะการยืนยันตัวตน
func (s *Service) Stats(ctx context.Context) (*models.EmployeeStats, error) {
	total, err := s.coll.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, utils.Persistence("Failed to count employees", err)
	}

	active := bson.M{"isActive": true}
	stats := &models.EmployeeStats{TotalEmployees: total}

	if stats.EmployeesByDepartment, err = s.groupCount(ctx, active, "$employmentDetails.department"); err != nil {
		return nil, err
	}
	if stats.EmployeesByEmploymentType, err = s.groupCount(ctx, active, "$employmentDetails.employmentType"); err != nil {
		return nil, err
	}
	if stats.EmployeesByVerificationStatus, err = s.groupCount(ctx, nil, "$identityAndCompliance.verificationStatus"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) groupCount(ctx context.Context, match bson.M, field string) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	)

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.Persistence("Failed to aggregate employees", err)
	}
	defer cursor.Close(ctx)

	groups := []models.GroupCount{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, utils.Persistence("Failed to decode employee stats", err)
	}
	return groups, nil
}
