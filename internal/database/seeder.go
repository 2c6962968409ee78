package database

import (
	"fmt"
	"math/rand"
	"time"

	"leave-management-backend/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var departments = []string{"Engineering", "Design", "Marketing", "Sales", "HR", "Finance"}

var firstNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack",
	"Kate", "Leo", "Mia", "Noah", "Olivia", "Peter", "Quinn", "Rachel", "Sam", "Tina",
}

// SeedAll wipes both tables and loads the demo data set: 2 admins, 3 managers,
// 20 employees and ~45 leave requests whose reviewers are consistent with the
// hierarchy policy.
func SeedAll(db *gorm.DB) error {
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Unscoped().Delete(&model.LeaveRequest{}).Error; err != nil {
		return err
	}
	if err := session.Unscoped().Delete(&model.User{}).Error; err != nil {
		return err
	}

	admins := []*model.User{
		newUser("Admin User", "admin@company.com", "admin123", model.RoleAdmin, "Management", 25),
		newUser("Sarah Admin", "admin2@company.com", "admin123", model.RoleAdmin, "Management", 25),
	}
	managers := []*model.User{
		newUser("Manager John", "manager@company.com", "manager123", model.RoleManager, "Engineering", 20),
		newUser("Manager Sarah", "manager2@company.com", "manager123", model.RoleManager, "Design", 18),
		newUser("Manager David", "manager3@company.com", "manager123", model.RoleManager, "Marketing", 22),
	}
	for _, u := range append(admins, managers...) {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	var employees []*model.User
	for i, firstName := range firstNames {
		manager := managers[i%len(managers)]
		emp := newUser(
			firstName+" Employee",
			fmt.Sprintf("employee%d@company.com", i+1),
			"employee123",
			model.RoleEmployee,
			departments[i%len(departments)],
			10+rand.Intn(11), // 10-20 days
		)
		emp.ManagerID = &manager.ID
		if err := db.Create(emp).Error; err != nil {
			return err
		}
		employees = append(employees, emp)
	}

	logrus.Info("Users seeded")

	leaveTypes := []string{model.LeaveTypeSick, model.LeaveTypeCasual, model.LeaveTypeAnnual, model.LeaveTypeUnpaid}
	statuses := []string{model.LeaveStatusPending, model.LeaveStatusApproved, model.LeaveStatusRejected}

	allUsers := append(append([]*model.User{}, admins...), managers...)
	allUsers = append(allUsers, employees...)

	for i := 0; i < 45; i++ {
		owner := allUsers[rand.Intn(len(allUsers))]
		leaveType := leaveTypes[rand.Intn(len(leaveTypes))]
		status := statuses[rand.Intn(len(statuses))]

		// Random dates within the past 60 or next 30 days, 1-5 days long.
		start := time.Now().AddDate(0, 0, rand.Intn(90)-60)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		duration := rand.Intn(5) + 1
		end := start.AddDate(0, 0, duration-1)

		leave := model.LeaveRequest{
			EmployeeID: owner.ID,
			LeaveType:  leaveType,
			StartDate:  start,
			EndDate:    end,
			TotalDays:  duration,
			Reason:     fmt.Sprintf("%s leave request for personal matters.", leaveType),
			Status:     status,
		}

		if status != model.LeaveStatusPending {
			reviewer := pickReviewer(owner, admins, managers)
			now := time.Now()
			leave.ReviewedByID = &reviewer.ID
			leave.ReviewedAt = &now
			if status == model.LeaveStatusApproved {
				leave.ReviewComment = "Approved. Enjoy your time off!"
			} else {
				leave.ReviewComment = "Unable to approve due to team capacity."
			}
		}

		if err := db.Create(&leave).Error; err != nil {
			return err
		}
	}

	logrus.Info("Leave requests seeded")
	logrus.Info("Default credentials: admin@company.com/admin123, manager@company.com/manager123, employee1@company.com/employee123")
	return nil
}

// pickReviewer chooses someone the hierarchy policy would actually allow.
func pickReviewer(owner *model.User, admins, managers []*model.User) *model.User {
	switch owner.Role {
	case model.RoleAdmin:
		for _, a := range admins {
			if a.ID != owner.ID {
				return a
			}
		}
		return admins[0]
	case model.RoleManager:
		return admins[rand.Intn(len(admins))]
	default:
		if rand.Intn(10) < 7 {
			return managers[rand.Intn(len(managers))]
		}
		return admins[rand.Intn(len(admins))]
	}
}

func newUser(name, email, password, role, department string, balance int) *model.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &model.User{
		Name:         name,
		Email:        email,
		Password:     string(hashed),
		Role:         role,
		Department:   department,
		LeaveBalance: balance,
		IsActive:     true,
	}
}
