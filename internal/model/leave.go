package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

const (
	LeaveTypeSick   = "sick"
	LeaveTypeCasual = "casual"
	LeaveTypeAnnual = "annual"
	LeaveTypeUnpaid = "unpaid"
)

// ValidLeaveType reports whether t is one of the known leave types.
func ValidLeaveType(t string) bool {
	return t == LeaveTypeSick || t == LeaveTypeCasual || t == LeaveTypeAnnual || t == LeaveTypeUnpaid
}

type LeaveRequest struct {
	gorm.Model
	EmployeeID uint      `json:"employee_id" gorm:"not null"` // Immutable after creation
	LeaveType  string    `json:"leave_type" gorm:"not null"`
	StartDate  time.Time `json:"start_date" gorm:"not null"`
	EndDate    time.Time `json:"end_date" gorm:"not null"`
	TotalDays  int       `json:"total_days"` // Inclusive day count, frozen at creation
	Reason     string    `json:"reason"`
	Status     string    `json:"status" gorm:"default:pending"`

	ReviewedByID  *uint      `json:"reviewed_by_id"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	ReviewComment string     `json:"review_comment"`

	Employee   User  `json:"employee" gorm:"foreignKey:EmployeeID"`
	ReviewedBy *User `json:"reviewed_by,omitempty" gorm:"foreignKey:ReviewedByID"`
}

// LeaveStats is the per-user status breakdown returned by /api/leaves/stats.
type LeaveStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
