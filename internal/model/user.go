package model

import "gorm.io/gorm"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager || role == RoleAdmin
}

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-"`
	Department   string `json:"department"`
	Role         string `json:"role" gorm:"default:employee"`
	ManagerID    *uint  `json:"manager_id"` // Self-reference: direct manager, nil for most managers/admins
	LeaveBalance int    `json:"leave_balance"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}
