package controllers_test

import (
	"KisaanPartner-Backend/src/controllers"
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/middleware"
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/routes"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/testutil"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

type fakeQueue struct {
	available bool
	ids       []string
}

func (q *fakeQueue) Available() bool { return q.available }

func (q *fakeQueue) EnqueueReconcile(_ context.Context, labourID string) (string, error) {
	q.ids = append(q.ids, labourID)
	return "reconcile-task", nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testApp struct {
	app         *fiber.App
	labours     *testutil.LabourStore
	assignments *testutil.AssignmentStore
	queue       *fakeQueue
	employees   *fakeEmployees
}

var fixedNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{
		labours:     testutil.NewLabourStore(),
		assignments: testutil.NewAssignmentStore(),
		queue:       &fakeQueue{},
		employees:   newFakeEmployees(),
	}
	ledger := attendance.NewLedger(ta.assignments, ta.labours,
		attendance.WithClock(func() time.Time { return fixedNow }),
		attendance.WithLocation(time.UTC),
	)

	ta.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger.Discard())})
	routes.InitRoutes(ta.app, routes.Handlers{
		Labour: &controllers.LabourController{
			Labours: ta.labours,
			Ledger:  ledger,
			Jobs:    ta.queue,
			Timeout: time.Second,
		},
		Employee: &controllers.EmployeeController{Employees: ta.employees, Timeout: time.Second},
		Health:   &controllers.HealthController{DB: fakePinger{}},
	})
	return ta
}

func (ta *testApp) do(t *testing.T, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func (ta *testApp) createLabourer(t *testing.T, name, contact string) models.Labour {
	t.Helper()
	resp, env := ta.do(t, http.MethodPost, "/labour", fiber.Map{
		"name":          name,
		"villageName":   "Test Village",
		"contactNumber": contact,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	return decode[models.Labour](t, env.Data)
}

func (ta *testApp) presentDays(t *testing.T, id string) int {
	t.Helper()
	resp, env := ta.do(t, http.MethodGet, "/labour/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[models.Labour](t, env.Data).TotalPresentDays
}

func TestAttendanceLifecycleOverHTTP(t *testing.T) {
	ta := newTestApp(t)

	labour := ta.createLabourer(t, "Test Labour", "1234567890")
	assert.Equal(t, 0, labour.TotalPresentDays)

	resp, env := ta.do(t, http.MethodPost, "/labour/"+labour.ID.Hex()+"/assign", fiber.Map{"farmerId": "test_farmer_1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	assigned := decode[map[string]interface{}](t, env.Data)
	assignmentID, _ := assigned["assignmentId"].(string)
	require.NotEmpty(t, assignmentID)
	assert.Equal(t, labour.ID.Hex(), assigned["labourId"])
	assert.Equal(t, "test_farmer_1", assigned["farmerId"])
	assert.Equal(t, "assigned", assigned["status"])

	steps := []struct {
		status string
		want   int
	}{
		{"present", 1},
		{"absent", 0},
		{"present", 1},
		{"present", 1},
	}
	for _, step := range steps {
		resp, env := ta.do(t, http.MethodPost, "/labour/attendance/"+assignmentID, fiber.Map{"status": step.status})
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		assert.Equal(t, "Attendance marked as "+step.status, env.Message)

		a := decode[models.LabourAssignment](t, env.Data)
		assert.Equal(t, step.status, a.AttendanceStatus())
		assert.Equal(t, models.AssignmentStatusConfirmed, a.Status)

		assert.Equal(t, step.want, ta.presentDays(t, labour.ID.Hex()))
	}

	resp, env = ta.do(t, http.MethodGet, "/labour/attendance/"+assignmentID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withLabour := decode[models.AssignmentWithLabour](t, env.Data)
	require.NotNil(t, withLabour.Labour)
	assert.Equal(t, "Test Labour", withLabour.Labour.Name)
}

func TestListLabourersWithTodayAttendance(t *testing.T) {
	ta := newTestApp(t)

	busy := ta.createLabourer(t, "Amit", "1111111111")
	idle := ta.createLabourer(t, "Bala", "2222222222")

	_, env := ta.do(t, http.MethodPost, "/labour/"+busy.ID.Hex()+"/assign", fiber.Map{"farmerId": "f1"})
	assignmentID := decode[map[string]interface{}](t, env.Data)["assignmentId"].(string)
	resp, _ := ta.do(t, http.MethodPost, "/labour/attendance/"+assignmentID, fiber.Map{"status": "present"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ta.do(t, http.MethodGet, "/labour", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	views := decode[[]map[string]json.RawMessage](t, env.Data)
	require.Len(t, views, 2)

	assert.JSONEq(t, `"present"`, string(views[0]["todayAttendance"]))
	assert.JSONEq(t, `{"totalAssignments":1,"presentDays":1,"absentDays":0,"pendingDays":0}`, string(views[0]["attendanceSummary"]))
	assert.JSONEq(t, `1`, string(views[0]["totalPresentDays"]))

	assert.JSONEq(t, `null`, string(views[1]["todayAttendance"]))
	assert.JSONEq(t, `"`+idle.ID.Hex()+`"`, string(views[1]["_id"]))
}

func TestCreateLabourerErrors(t *testing.T) {
	ta := newTestApp(t)
	ta.createLabourer(t, "Original Labour", "9000012345")

	resp, env := ta.do(t, http.MethodPost, "/labour", fiber.Map{
		"name": "Duplicate Labour", "villageName": "Another Village", "contactNumber": "9000012345",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "already exists")

	resp, env = ta.do(t, http.MethodPost, "/labour", fiber.Map{"name": "No Village"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name and village name are required", env.Message)
}

func TestAttendanceErrors(t *testing.T) {
	ta := newTestApp(t)
	labour := ta.createLabourer(t, "Ramesh", "1234567890")
	_, env := ta.do(t, http.MethodPost, "/labour/"+labour.ID.Hex()+"/assign", fiber.Map{"farmerId": "f1"})
	assignmentID := decode[map[string]interface{}](t, env.Data)["assignmentId"].(string)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"invalid status", http.MethodPost, "/labour/attendance/" + assignmentID, fiber.Map{"status": "maybe"}, http.StatusBadRequest},
		{"missing status", http.MethodPost, "/labour/attendance/" + assignmentID, nil, http.StatusBadRequest},
		{"unknown assignment", http.MethodPost, "/labour/attendance/665f1c2e8b3e4a0012345678", fiber.Map{"status": "present"}, http.StatusNotFound},
		{"malformed assignment id", http.MethodPost, "/labour/attendance/abc", fiber.Map{"status": "present"}, http.StatusNotFound},
		{"bad date", http.MethodPost, "/labour/attendance/" + assignmentID, fiber.Map{"status": "present", "date": "soon"}, http.StatusBadRequest},
		{"assign without farmer", http.MethodPost, "/labour/" + labour.ID.Hex() + "/assign", nil, http.StatusBadRequest},
		{"assign unknown labourer", http.MethodPost, "/labour/665f1c2e8b3e4a0012345678/assign", fiber.Map{"farmerId": "f1"}, http.StatusNotFound},
		{"get unknown assignment", http.MethodGet, "/labour/attendance/665f1c2e8b3e4a0012345678", nil, http.StatusNotFound},
		{"get unknown labourer", http.MethodGet, "/labour/665f1c2e8b3e4a0012345678", nil, http.StatusNotFound},
		{"unknown route", http.MethodGet, "/nothing/here", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, env := ta.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.False(t, env.Success)
			assert.Equal(t, tc.status, env.Status)
			assert.NotEmpty(t, env.Message)
		})
	}

	stored, _ := ta.assignments.Get(mustObjectID(t, assignmentID))
	assert.Equal(t, models.AttendancePending, stored.AttendanceStatus())
	assert.Equal(t, 0, ta.presentDays(t, labour.ID.Hex()))
}

func TestVillagesSeedAndDelete(t *testing.T) {
	ta := newTestApp(t)

	resp, env := ta.do(t, http.MethodPost, "/labour/seed", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	resp, env = ta.do(t, http.MethodPost, "/labour/seed", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "already exists")

	resp, env = ta.do(t, http.MethodGet, "/labour/villages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Rampur", "Shivpur"}, decode[[]string](t, env.Data))

	labour := ta.createLabourer(t, "Temp", "3333333333")
	resp, _ = ta.do(t, http.MethodDelete, "/labour/"+labour.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ta.do(t, http.MethodGet, "/labour/"+labour.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[models.Labour](t, env.Data).IsActive)

	resp, _ = ta.do(t, http.MethodDelete, "/labour/"+labour.ID.Hex()+"/permanent", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodDelete, "/labour/"+labour.ID.Hex()+"/permanent", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFarmerAssignmentsAndExport(t *testing.T) {
	ta := newTestApp(t)
	labour := ta.createLabourer(t, "Ramesh", "1234567890")
	for i := 0; i < 2; i++ {
		resp, _ := ta.do(t, http.MethodPost, "/labour/"+labour.ID.Hex()+"/assign", fiber.Map{"farmerId": "farmer-9", "assignmentDate": "2025-06-11"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := ta.do(t, http.MethodGet, "/labour/farmer/farmer-9/assignments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]models.AssignmentWithLabour](t, env.Data)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-06-11", list[0].AssignmentDate.Format("2006-01-02"))
	require.NotNil(t, list[0].Labour)

	resp, _ = ta.do(t, http.MethodGet, "/labour/farmer/farmer-9/assignments/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "assignments-farmer-9.xlsx")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))
}

func TestReconcileEndpoints(t *testing.T) {
	ta := newTestApp(t)
	labour := ta.createLabourer(t, "Ramesh", "1234567890")
	require.NoError(t, ta.labours.SetPresentCount(context.Background(), labour.ID, 4))

	t.Run("inline without queue", func(t *testing.T) {
		resp, env := ta.do(t, http.MethodPost, "/labour/"+labour.ID.Hex()+"/reconcile", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"labourId":"`+labour.ID.Hex()+`","totalPresentDays":0}`, string(env.Data))
		assert.Equal(t, 0, ta.labours.PresentDays(labour.ID))

		resp, env = ta.do(t, http.MethodPost, "/labour/reconcile", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
	})

	t.Run("queued", func(t *testing.T) {
		ta.queue.available = true
		defer func() { ta.queue.available = false }()

		resp, _ := ta.do(t, http.MethodPost, "/labour/"+labour.ID.Hex()+"/reconcile", nil)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp, _ = ta.do(t, http.MethodPost, "/labour/reconcile", nil)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		assert.Equal(t, []string{labour.ID.Hex(), ""}, ta.queue.ids)
	})

	t.Run("unknown labourer", func(t *testing.T) {
		resp, _ := ta.do(t, http.MethodPost, "/labour/665f1c2e8b3e4a0012345678/reconcile", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	ta := newTestApp(t)
	resp, _ := ta.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app := fiber.New()
	h := &controllers.HealthController{DB: fakePinger{err: errors.New("no primary")}}
	app.Get("/health", h.Health)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
