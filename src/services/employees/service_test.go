package employees

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func validRequest() models.RegisterEmployeeRequest {
	return models.RegisterEmployeeRequest{
		PersonalDetails: &models.PersonalDetails{
			FirstName:    "Anita",
			LastName:     "Sharma",
			DateOfBirth:  time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
			Gender:       "Female",
			MobileNumber: "9876500001",
			Email:        "Anita@Example.com",
			VillageName:  "Rampur",
			Address:      "Main road",
		},
		EmploymentDetails: &models.EmploymentDetails{
			EmployeeID:       "emp001",
			Department:       "Field Operations",
			Designation:      "Supervisor",
			DateOfJoining:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			EmploymentType:   "full-time",
			ReportingManager: "R. Singh",
		},
		IdentityAndCompliance: &models.IdentityAndCompliance{
			AadhaarNumber: "123412341234",
			PanNumber:     "abcde1234f",
		},
		BankingDetails: &models.BankingDetails{
			BankName:          "SBI",
			AccountHolderName: "Anita Sharma",
			AccountNumber:     "00011122233",
			IfscCode:          "sbin0000123",
		},
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	t.Run("missing group", func(t *testing.T) {
		req := validRequest()
		req.BankingDetails = nil
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("bad enum", func(t *testing.T) {
		req := validRequest()
		req.EmploymentDetails.EmploymentType = "intern"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("missing date of birth", func(t *testing.T) {
		req := validRequest()
		req.PersonalDetails.DateOfBirth = time.Time{}
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Equal(t, "Date of birth is required", utils.MessageOf(err))
	})
}

func TestNormalize(t *testing.T) {
	req := validRequest()
	e := &models.Employee{
		PersonalDetails:       *req.PersonalDetails,
		EmploymentDetails:     *req.EmploymentDetails,
		IdentityAndCompliance: *req.IdentityAndCompliance,
		BankingDetails:        *req.BankingDetails,
	}
	normalize(e)

	assert.Equal(t, "female", e.PersonalDetails.Gender)
	assert.Equal(t, "anita@example.com", e.PersonalDetails.Email)
	assert.Equal(t, "EMP001", e.EmploymentDetails.EmployeeID)
	assert.Equal(t, "ABCDE1234F", e.IdentityAndCompliance.PanNumber)
	assert.Equal(t, "SBIN0000123", e.BankingDetails.IfscCode)
	assert.Equal(t, "pending", e.IdentityAndCompliance.VerificationStatus)
	assert.NoError(t, check(e))
}

func TestServiceWithMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("register", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		e, err := NewService(mt.Coll, nil).Register(ctx, validRequest())
		require.NoError(mt, err)
		assert.False(mt, e.ID.IsZero())
		assert.True(mt, e.IsActive)
		assert.Equal(mt, "EMP001", e.EmploymentDetails.EmployeeID)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
		}))

		_, err := NewService(mt.Coll, nil).Register(ctx, validRequest())
		assert.ErrorIs(mt, err, utils.ErrConflict)
		assert.Equal(mt, "Employee with this email already exists", utils.MessageOf(err))
	})

	mt.Run("duplicate employee id", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{{Key: "_id", Value: primitive.NewObjectID()}}),
		)

		_, err := NewService(mt.Coll, nil).Register(ctx, validRequest())
		assert.ErrorIs(mt, err, utils.ErrConflict)
		assert.Equal(mt, "Employee with this employee ID already exists", utils.MessageOf(err))
	})

	mt.Run("find by employee id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "employmentDetails", Value: bson.D{{Key: "employeeId", Value: "EMP001"}}},
		}))

		e, err := NewService(mt.Coll, nil).FindByEmployeeID(ctx, " emp001 ")
		require.NoError(mt, err)
		assert.Equal(mt, "EMP001", e.EmploymentDetails.EmployeeID)
	})

	mt.Run("delete unknown", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := NewService(mt.Coll, nil).Delete(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, utils.ErrNotFound)
	})

	mt.Run("stats", func(mt *mtest.T) {
		ns := namespace(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "Field Operations"}, {Key: "count", Value: int32(2)}},
				bson.D{{Key: "_id", Value: "Accounts"}, {Key: "count", Value: int32(1)}},
			),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: "full-time"}, {Key: "count", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: "pending"}, {Key: "count", Value: int32(4)}}),
		)

		stats, err := NewService(mt.Coll, nil).Stats(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, stats.TotalEmployees)
		assert.Equal(mt, []models.GroupCount{{ID: "Field Operations", Count: 2}, {ID: "Accounts", Count: 1}}, stats.EmployeesByDepartment)
		assert.Equal(mt, []models.GroupCount{{ID: "full-time", Count: 3}}, stats.EmployeesByEmploymentType)
		assert.Equal(mt, []models.GroupCount{{ID: "pending", Count: 4}}, stats.EmployeesByVerificationStatus)
	})
}
