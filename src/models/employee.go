package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalDetails ข้อมูลส่วนตัวของพนักงาน
type PersonalDetails struct {
	FirstName    string    `bson:"firstName" json:"firstName" validate:"required"`
	LastName     string    `bson:"lastName" json:"lastName" validate:"required"`
	DateOfBirth  time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender       string    `bson:"gender" json:"gender" validate:"required,oneof=male female other"`
	MobileNumber string    `bson:"mobileNumber" json:"mobileNumber" validate:"required"`
	Email        string    `bson:"email" json:"email" validate:"required"`
	VillageName  string    `bson:"villageName" json:"villageName" validate:"required"`
	Address      string    `bson:"address" json:"address" validate:"required"`
}

// EmploymentDetails ข้อมูลการจ้างงาน
type EmploymentDetails struct {
	EmployeeID       string    `bson:"employeeId" json:"employeeId" validate:"required"`
	Department       string    `bson:"department" json:"department" validate:"required"`
	Designation      string    `bson:"designation" json:"designation" validate:"required"`
	DateOfJoining    time.Time `bson:"dateOfJoining" json:"dateOfJoining"`
	EmploymentType   string    `bson:"employmentType" json:"employmentType" validate:"required,oneof=full-time contract"`
	ReportingManager string    `bson:"reportingManager" json:"reportingManager" validate:"required"`
}

// IdentityAndCompliance ข้อมูล KYC
type IdentityAndCompliance struct {
	AadhaarNumber      string `bson:"aadhaarNumber" json:"aadhaarNumber" validate:"required"`
	PanNumber          string `bson:"panNumber" json:"panNumber" validate:"required"`
	PassportNumber     string `bson:"passportNumber,omitempty" json:"passportNumber,omitempty"`
	VerificationStatus string `bson:"verificationStatus" json:"verificationStatus" validate:"omitempty,oneof=pending verified rejected"`
}

// BankingDetails ข้อมูลบัญชีธนาคาร
type BankingDetails struct {
	BankName          string `bson:"bankName" json:"bankName" validate:"required"`
	AccountHolderName string `bson:"accountHolderName" json:"accountHolderName" validate:"required"`
	AccountNumber     string `bson:"accountNumber" json:"accountNumber" validate:"required"`
	IfscCode          string `bson:"ifscCode" json:"ifscCode" validate:"required"`
}

// Employee พนักงานประจำ
type Employee struct {
	ID                    primitive.ObjectID    `bson:"_id,omitempty" json:"_id"`
	PersonalDetails       PersonalDetails       `bson:"personalDetails" json:"personalDetails"`
	EmploymentDetails     EmploymentDetails     `bson:"employmentDetails" json:"employmentDetails"`
	IdentityAndCompliance IdentityAndCompliance `bson:"identityAndCompliance" json:"identityAndCompliance"`
	BankingDetails        BankingDetails        `bson:"bankingDetails" json:"bankingDetails"`
	IsActive              bool                  `bson:"isActive" json:"isActive"`
	CreatedAt             time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// Touch stamps UpdatedAt. Call it at the start of every mutation.
func (e *Employee) Touch(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// RegisterEmployeeRequest body ของ POST /employee
// ทุกกลุ่มข้อมูลต้องส่งมาครบ
type RegisterEmployeeRequest struct {
	PersonalDetails       *PersonalDetails       `json:"personalDetails" validate:"required"`
	EmploymentDetails     *EmploymentDetails     `json:"employmentDetails" validate:"required"`
	IdentityAndCompliance *IdentityAndCompliance `json:"identityAndCompliance" validate:"required"`
	BankingDetails        *BankingDetails        `json:"bankingDetails" validate:"required"`
}

// UpdateEmployeeRequest body ของ PUT /employee/:id (ส่งมาเฉพาะกลุ่มที่ต้องการแก้)
type UpdateEmployeeRequest struct {
	PersonalDetails       *PersonalDetails       `json:"personalDetails"`
	EmploymentDetails     *EmploymentDetails     `json:"employmentDetails"`
	IdentityAndCompliance *IdentityAndCompliance `json:"identityAndCompliance"`
	BankingDetails        *BankingDetails        `json:"bankingDetails"`
	IsActive              *bool                  `json:"isActive"`
}

// EmployeeFilter ตัวกรองของ GET /employee
type EmployeeFilter struct {
	IsActive           *bool
	Department         string
	EmploymentType     string
	VerificationStatus string
}

// GroupCount ผลลัพธ์ของการ $group
type GroupCount struct {
	ID    string `bson:"_id" json:"_id"`
	Count int    `bson:"count" json:"count"`
}

// EmployeeStats สถิติพนักงาน
type EmployeeStats struct {
	TotalEmployees                int64        `json:"totalEmployees"`
	EmployeesByDepartment         []GroupCount `json:"employeesByDepartment"`
	EmployeesByEmploymentType     []GroupCount `json:"employeesByEmploymentType"`
	EmployeesByVerificationStatus []GroupCount `json:"employeesByVerificationStatus"`
}
