package repository

import (
	"errors"
	"time"

	"leave-management-backend/internal/model"

	"gorm.io/gorm"
)

// ErrNotPending is returned by Decide when the conditional status update
// matched no row: the request was already reviewed (or deleted) between the
// caller's read and this write.
var ErrNotPending = errors.New("leave request is no longer pending")

// Decision carries everything Decide writes in one transaction.
type Decision struct {
	Status     string
	ReviewerID uint
	ReviewedAt time.Time
	Comment    string
	EmployeeID uint
	DebitDays  int // 0 for rejections: balance untouched
}

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	FindByID(id uint) (*model.LeaveRequest, error)
	FindByEmployeeID(employeeID uint) ([]model.LeaveRequest, error)
	FindAll() ([]model.LeaveRequest, error)
	FindByManagerID(managerID uint) ([]model.LeaveRequest, error)
	Decide(id uint, decision Decision) error
	StatsByEmployeeID(employeeID uint) (model.LeaveStats, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) FindByID(id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.Preload("Employee").Preload("ReviewedBy").First(&leave, id).Error
	return &leave, err
}

func (r *leaveRepository) FindByEmployeeID(employeeID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("employee_id = ?", employeeID).
		Preload("ReviewedBy").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *leaveRepository) FindAll() ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("Employee").Preload("ReviewedBy").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

// FindByManagerID returns requests owned by users whose manager_id is the
// given id. Admins typically have nobody pointing at them, so this is empty
// for them unless a manager row is explicitly assigned to an admin.
func (r *leaveRepository) FindByManagerID(managerID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Joins("JOIN users ON users.id = leave_requests.employee_id").
		Where("users.manager_id = ?", managerID).
		Preload("Employee").Preload("ReviewedBy").
		Order("leave_requests.created_at desc").
		Find(&list).Error
	return list, err
}

// Decide performs the review transition as one transaction. The status write
// is conditional on the row still being pending, so of two concurrent reviews
// exactly one wins; the loser gets ErrNotPending and nothing is persisted.
func (r *leaveRepository) Decide(id uint, decision Decision) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.LeaveRequest{}).
			Where("id = ? AND status = ?", id, model.LeaveStatusPending).
			Updates(map[string]interface{}{
				"status":         decision.Status,
				"reviewed_by_id": decision.ReviewerID,
				"reviewed_at":    decision.ReviewedAt,
				"review_comment": decision.Comment,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		if decision.DebitDays > 0 {
			// Unconditional debit: the balance was validated at creation time
			// only, so this may go negative if it changed since.
			if err := tx.Model(&model.User{}).
				Where("id = ?", decision.EmployeeID).
				UpdateColumn("leave_balance", gorm.Expr("leave_balance - ?", decision.DebitDays)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *leaveRepository) StatsByEmployeeID(employeeID uint) (model.LeaveStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return model.LeaveStats{}, err
	}

	var stats model.LeaveStats
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.LeaveStatusPending:
			stats.Pending = row.Count
		case model.LeaveStatusApproved:
			stats.Approved = row.Count
		case model.LeaveStatusRejected:
			stats.Rejected = row.Count
		}
	}
	return stats, nil
}
