package attendance

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"strings"
	"time"
)

// normalizeSettableStatus accepts present/absent in any case. pending is not settable.
func normalizeSettableStatus(raw string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	switch status {
	case models.AttendancePresent, models.AttendanceAbsent:
		return status, nil
	default:
		return "", utils.InvalidInput("Valid attendance status (present/absent) is required")
	}
}

// attendanceDelta is the change to TotalPresentDays for a previous -> next
// transition. Re-confirming the same status never moves the counter.
func attendanceDelta(previous, next string) int {
	switch {
	case previous == next:
		return 0
	case next == models.AttendancePresent:
		return 1
	case previous == models.AttendancePresent:
		return -1
	default:
		return 0
	}
}

// dayBounds returns local midnight and the last millisecond of the same day.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	t := now.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}
