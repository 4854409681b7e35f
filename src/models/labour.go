package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Labour แรงงานรายวัน
type Labour struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	VillageName      string             `bson:"villageName" json:"villageName"`
	ContactNumber    string             `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	WorkTypes        []string           `bson:"workTypes" json:"workTypes"`
	Experience       string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Availability     string             `bson:"availability,omitempty" json:"availability,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	TotalPresentDays int                `bson:"totalPresentDays" json:"totalPresentDays"` // จำนวนวันที่มาทำงาน แก้ไขผ่าน attendance เท่านั้น
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Touch stamps UpdatedAt. Call it at the start of every mutation.
func (l *Labour) Touch(now time.Time) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
}

// CreateLabourRequest body ของ POST /labour
type CreateLabourRequest struct {
	Name          string   `json:"name" validate:"required"`
	VillageName   string   `json:"villageName" validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"omitempty,number,len=10"`
	Email         string   `json:"email" validate:"omitempty,email"`
	WorkTypes     []string `json:"workTypes"`
	Experience    string   `json:"experience"`
	Availability  string   `json:"availability"`
	Address       string   `json:"address"`
}

// LabourFilter query ของ GET /labour
type LabourFilter struct {
	VillageName string
	Search      string
}

// AttendanceSummary จำนวนการมอบหมายงานของแรงงานแต่ละคน แยกตามสถานะ attendance
type AttendanceSummary struct {
	TotalAssignments int `bson:"totalAssignments" json:"totalAssignments"`
	PresentDays      int `bson:"presentDays" json:"presentDays"`
	AbsentDays       int `bson:"absentDays" json:"absentDays"`
	PendingDays      int `bson:"pendingDays" json:"pendingDays"`
}

// LabourView labour + today's attendance, returned by the listing endpoint.
// TodayAttendance is nil when the labourer has no assignment today.
type LabourView struct {
	Labour            `bson:",inline"`
	TodayAttendance   *string           `json:"todayAttendance"`
	AttendanceSummary AttendanceSummary `json:"attendanceSummary"`
}
