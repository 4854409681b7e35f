package exports

import (
	"KisaanPartner-Backend/src/models"
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const assignmentsSheet = "Assignments"

var assignmentHeaders = []string{
	"Assignment ID", "Labour Name", "Village", "Contact Number",
	"Assignment Date", "Status", "Attendance", "Attendance Date", "Attendance Time", "Notes",
}

// FarmerAssignmentsWorkbook สร้างไฟล์ .xlsx ของ assignment ทั้งหมดของเกษตรกร
// dates are rendered in loc.
func FarmerAssignmentsWorkbook(farmerID string, assignments []models.AssignmentWithLabour, loc *time.Location) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", assignmentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(assignmentsSheet, "A1", &assignmentHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, a := range assignments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := assignmentRow(a, loc)
		if err := f.SetSheetRow(assignmentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Labour assignments for farmer " + farmerID,
		Creator: "KisaanPartner",
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func assignmentRow(a models.AssignmentWithLabour, loc *time.Location) []interface{} {
	var name, village, contact string
	if a.Labour != nil {
		name, village, contact = a.Labour.Name, a.Labour.VillageName, a.Labour.ContactNumber
	}

	attendance, attendanceDate, attendanceTime := a.AttendanceStatus(), "", ""
	if a.Attendance != nil {
		if a.Attendance.Date != nil {
			attendanceDate = a.Attendance.Date.In(loc).Format("2006-01-02")
		}
		attendanceTime = a.Attendance.Time
	}

	return []interface{}{
		a.ID.Hex(),
		name,
		village,
		contact,
		a.AssignmentDate.In(loc).Format("2006-01-02"),
		a.Status,
		attendance,
		attendanceDate,
		attendanceTime,
		a.Notes,
	}
}
