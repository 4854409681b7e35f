package controllers_test

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/testutil"
	"KisaanPartner-Backend/src/utils"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEmployees struct {
	mu         sync.Mutex
	items      map[primitive.ObjectID]models.Employee
	lastParams models.PaginationParams
	lastFilter models.EmployeeFilter
}

func newFakeEmployees() *fakeEmployees {
	return &fakeEmployees{items: map[primitive.ObjectID]models.Employee{}}
}

func (f *fakeEmployees) Register(_ context.Context, req models.RegisterEmployeeRequest) (*models.Employee, error) {
	if req.PersonalDetails == nil || req.EmploymentDetails == nil {
		return nil, utils.InvalidInput("All field groups are required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.items {
		if e.EmploymentDetails.EmployeeID == req.EmploymentDetails.EmployeeID {
			return nil, utils.Conflict("Employee with this employee ID already exists")
		}
	}
	e := models.Employee{
		ID:                primitive.NewObjectID(),
		PersonalDetails:   *req.PersonalDetails,
		EmploymentDetails: *req.EmploymentDetails,
		IsActive:          true,
	}
	f.items[e.ID] = e
	return &e, nil
}

func (f *fakeEmployees) List(_ context.Context, params models.PaginationParams, filter models.EmployeeFilter) ([]models.Employee, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastParams, f.lastFilter = params, filter
	out := []models.Employee{}
	for _, e := range f.items {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployees) FindByID(_ context.Context, id primitive.ObjectID) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, utils.NotFound("Employee not found")
	}
	return &e, nil
}

func (f *fakeEmployees) FindByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.items {
		if e.EmploymentDetails.EmployeeID == employeeID {
			return &e, nil
		}
	}
	return nil, utils.NotFound("Employee not found")
}

func (f *fakeEmployees) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	e, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.PersonalDetails != nil {
		e.PersonalDetails = *req.PersonalDetails
	}
	f.mu.Lock()
	f.items[id] = *e
	f.mu.Unlock()
	return e, nil
}

func (f *fakeEmployees) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	e, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	e.IsActive = false
	f.mu.Lock()
	f.items[id] = *e
	f.mu.Unlock()
	return nil
}

func (f *fakeEmployees) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return utils.NotFound("Employee not found")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEmployees) Stats(_ context.Context) (*models.EmployeeStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.EmployeeStats{TotalEmployees: int64(len(f.items))}, nil
}

func TestEmployeeEndpoints(t *testing.T) {
	suite := testutil.NewTestSuiteResult("Employee API")
	defer suite.PrintSummary()

	ta := newTestApp(t)
	body := fiber.Map{
		"personalDetails":   fiber.Map{"firstName": "Anita", "lastName": "Sharma", "email": "anita@example.com"},
		"employmentDetails": fiber.Map{"employeeId": "EMP001", "department": "Field Operations"},
	}
	var created models.Employee

	suite.Track(t, "register", func(t *testing.T) {
		resp, env := ta.do(t, http.MethodPost, "/employee", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
		created = decode[models.Employee](t, env.Data)
		assert.Equal(t, "EMP001", created.EmploymentDetails.EmployeeID)
	})

	suite.Track(t, "register duplicate", func(t *testing.T) {
		resp, env := ta.do(t, http.MethodPost, "/employee", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Message, "already exists")
	})

	suite.Track(t, "list with filters", func(t *testing.T) {
		resp, _ := ta.do(t, http.MethodGet, "/employee?page=2&limit=5&search=ani&department=Field%20Operations&isActive=true", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		fake := ta.employees
		assert.Equal(t, 2, fake.lastParams.Page)
		assert.Equal(t, 5, fake.lastParams.Limit)
		assert.Equal(t, "ani", fake.lastParams.Search)
		assert.Equal(t, "Field Operations", fake.lastFilter.Department)
		require.NotNil(t, fake.lastFilter.IsActive)
		assert.True(t, *fake.lastFilter.IsActive)
	})

	suite.Track(t, "list rejects bad isActive", func(t *testing.T) {
		resp, _ := ta.do(t, http.MethodGet, "/employee?isActive=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	suite.Track(t, "stats route is not an id", func(t *testing.T) {
		resp, env := ta.do(t, http.MethodGet, "/employee/stats", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"totalEmployees":1,"employeesByDepartment":null,"employeesByEmploymentType":null,"employeesByVerificationStatus":null}`, string(env.Data))
	})

	suite.Track(t, "get by employee id", func(t *testing.T) {
		resp, _ := ta.do(t, http.MethodGet, "/employee/by-employee-id/EMP001", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = ta.do(t, http.MethodGet, "/employee/by-employee-id/EMP999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	suite.Track(t, "update deactivate delete", func(t *testing.T) {
		id := created.ID.Hex()
		resp, env := ta.do(t, http.MethodPut, "/employee/"+id, fiber.Map{"personalDetails": fiber.Map{"firstName": "Anitha"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Anitha", decode[models.Employee](t, env.Data).PersonalDetails.FirstName)

		resp, _ = ta.do(t, http.MethodDelete, "/employee/"+id, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = ta.do(t, http.MethodDelete, "/employee/"+id+"/permanent", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = ta.do(t, http.MethodGet, "/employee/"+id, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp, _ = ta.do(t, http.MethodGet, "/employee/not-an-id", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
