package usecase

import (
	"errors"
	"time"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Identity is the authenticated caller, verified upstream by the JWT
// middleware and passed explicitly into every operation.
type Identity struct {
	ID   uint
	Role string
}

type LeaveUsecase struct {
	leaves repository.LeaveRepository
	users  repository.UserRepository
}

func NewLeaveUsecase(leaves repository.LeaveRepository, users repository.UserRepository) *LeaveUsecase {
	return &LeaveUsecase{leaves: leaves, users: users}
}

// Create validates and persists a new pending leave request. The requester's
// balance is checked here but not reserved: concurrent pending requests can
// overdraw in aggregate, which is accepted policy.
func (u *LeaveUsecase) Create(requester Identity, leaveType, startDate, endDate, reason string) (*model.LeaveRequest, error) {
	if !model.ValidLeaveType(leaveType) {
		return nil, ErrInvalidLeaveType
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	totalDays := inclusiveDays(start, end)
	if totalDays < 1 {
		return nil, ErrInvalidDateRange
	}

	user, err := u.users.FindByID(requester.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.LeaveBalance < totalDays {
		return nil, ErrInsufficientBalance
	}

	leave := model.LeaveRequest{
		EmployeeID: requester.ID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     reason,
		Status:     model.LeaveStatusPending,
	}
	if err := u.leaves.Create(&leave); err != nil {
		return nil, err
	}

	// Re-read so the employee fields come back denormalized for display.
	return u.leaves.FindByID(leave.ID)
}

// Review runs the approval state machine: pending → approved|rejected,
// exactly once. On approval the owner's balance is debited by TotalDays in
// the same transaction as the status write.
func (u *LeaveUsecase) Review(reviewer Identity, leaveID uint, status, comment string) (*model.LeaveRequest, error) {
	if status != model.LeaveStatusApproved && status != model.LeaveStatusRejected {
		return nil, ErrInvalidStatus
	}

	leave, err := u.leaves.FindByID(leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	if leave.Status != model.LeaveStatusPending {
		return nil, ErrAlreadyReviewed
	}

	// Hierarchy policy, first violated rule wins.
	if err := checkHierarchy(leave.Employee.Role, leave.EmployeeID, reviewer); err != nil {
		return nil, err
	}

	decision := repository.Decision{
		Status:     status,
		ReviewerID: reviewer.ID,
		ReviewedAt: time.Now(),
		Comment:    comment,
		EmployeeID: leave.EmployeeID,
	}
	if status == model.LeaveStatusApproved {
		decision.DebitDays = leave.TotalDays
	}

	if err := u.leaves.Decide(leave.ID, decision); err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			// Lost the race against a concurrent review.
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	return u.leaves.FindByID(leave.ID)
}

// checkHierarchy enforces who may review whose request:
//   - a manager's request needs an admin
//   - an admin's request needs a different admin
//   - an employee's request takes any manager or admin (team scoping is left
//     to the listing queries, not this transition)
func checkHierarchy(ownerRole string, ownerID uint, reviewer Identity) error {
	switch ownerRole {
	case model.RoleManager:
		if reviewer.Role != model.RoleAdmin {
			return ErrManagerNeedsAdmin
		}
	case model.RoleAdmin:
		if reviewer.Role != model.RoleAdmin {
			return ErrAdminNeedsAdmin
		}
		if reviewer.ID == ownerID {
			return ErrSelfReview
		}
	}
	return nil
}

// Stats returns the caller's own status breakdown; every role, admins
// included, sees only its own counts here.
func (u *LeaveUsecase) Stats(caller Identity) (model.LeaveStats, error) {
	return u.leaves.StatsByEmployeeID(caller.ID)
}

func (u *LeaveUsecase) MyLeaves(caller Identity) ([]model.LeaveRequest, error) {
	return u.leaves.FindByEmployeeID(caller.ID)
}

func (u *LeaveUsecase) AllLeaves() ([]model.LeaveRequest, error) {
	return u.leaves.FindAll()
}

func (u *LeaveUsecase) TeamLeaves(caller Identity) ([]model.LeaveRequest, error) {
	return u.leaves.FindByManagerID(caller.ID)
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
