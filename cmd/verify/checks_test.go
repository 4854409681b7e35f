package main

import (
	"KisaanPartner-Backend/src/controllers"
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/middleware"
	"KisaanPartner-Backend/src/routes"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/testutil"
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noPing struct{}

func (noPing) Ping(context.Context) error { return nil }

// startAPI serves the real routes over in-memory stores on a random port.
func startAPI(t *testing.T) string {
	t.Helper()
	labours := testutil.NewLabourStore()
	ledger := attendance.NewLedger(testutil.NewAssignmentStore(), labours)

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(logger.Discard()),
		DisableStartupMessage: true,
	})
	routes.InitRoutes(app, routes.Handlers{
		Labour:   &controllers.LabourController{Labours: labours, Ledger: ledger, Timeout: time.Second},
		Employee: &controllers.EmployeeController{},
		Health:   &controllers.HealthController{DB: noPing{}},
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestVerifyAttendance(t *testing.T) {
	var out bytes.Buffer
	r := newReport(&out)

	require.NoError(t, verifyAttendance(newAPIClient(startAPI(t), 5*time.Second), r))
	assert.NoError(t, r.Err(), out.String())
	assert.Contains(t, out.String(), "PASS: Initial totalPresentDays is 0")
	assert.Contains(t, out.String(), "PASS: totalPresentDays is 1 after present")
	assert.Contains(t, out.String(), "PASS: totalPresentDays is 0 after absent")
}

func TestVerifyDuplicate(t *testing.T) {
	var out bytes.Buffer
	r := newReport(&out)

	require.NoError(t, verifyDuplicate(newAPIClient(startAPI(t), 5*time.Second), r, "9000012345"))
	assert.NoError(t, r.Err(), out.String())
	assert.Contains(t, out.String(), "PASS: Duplicate creation failed as expected")
}

func TestRandomPhone(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := randomPhone()
		assert.Len(t, p, 10)
		assert.Equal(t, "90000", p[:5])
	}
}

func TestReportErr(t *testing.T) {
	r := newReport(&bytes.Buffer{})
	assert.NoError(t, r.Err())
	r.fail("boom")
	assert.EqualError(t, r.Err(), "1 check(s) failed")
}
