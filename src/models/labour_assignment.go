package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะของการมอบหมายงาน (ไม่ใช่สถานะการมาทำงาน)
const (
	AssignmentStatusAssigned  = "assigned"
	AssignmentStatusConfirmed = "confirmed"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// สถานะการมาทำงาน
const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance ผลการเช็คชื่อของการมอบหมายงาน
type Attendance struct {
	Status      string     `bson:"status" json:"status"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Time        string     `bson:"time,omitempty" json:"time,omitempty"` // HH:MM
	Notes       string     `bson:"notes" json:"notes"`
	ConfirmedAt *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
}

// LabourAssignment การมอบหมายแรงงานให้เกษตรกรในวันหนึ่ง
type LabourAssignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LabourID       primitive.ObjectID `bson:"labourId" json:"labourId"`
	FarmerID       string             `bson:"farmerId" json:"farmerId"`
	AssignmentDate time.Time          `bson:"assignmentDate" json:"assignmentDate"`
	Status         string             `bson:"status" json:"status"`
	Attendance     *Attendance        `bson:"attendance,omitempty" json:"attendance,omitempty"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AttendanceStatus returns the recorded status, pending when never set.
func (a *LabourAssignment) AttendanceStatus() string {
	if a.Attendance == nil || a.Attendance.Status == "" {
		return AttendancePending
	}
	return a.Attendance.Status
}

// Touch stamps UpdatedAt. Call it at the start of every mutation.
func (a *LabourAssignment) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

// AssignmentWithLabour assignment พร้อมข้อมูลแรงงาน (populate)
type AssignmentWithLabour struct {
	LabourAssignment `bson:",inline"`
	Labour           *Labour `bson:"labour,omitempty" json:"labour,omitempty"`
}

// AssignLabourRequest body ของ POST /labour/:labourId/assign
type AssignLabourRequest struct {
	FarmerID       string `json:"farmerId"`
	AssignmentDate string `json:"assignmentDate"`
	Notes          string `json:"notes"`
}

// AssignLabourResponse ข้อมูลที่ส่งกลับหลังมอบหมายงาน
type AssignLabourResponse struct {
	AssignmentID   primitive.ObjectID `json:"assignmentId"`
	LabourID       primitive.ObjectID `json:"labourId"`
	FarmerID       string             `json:"farmerId"`
	AssignmentDate time.Time          `json:"assignmentDate"`
	Status         string             `json:"status"`
}

// ConfirmAttendanceRequest body ของ POST /labour/attendance/:assignmentId
type ConfirmAttendanceRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Notes  string `json:"notes"`
}
