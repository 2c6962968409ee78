package usecase

import (
	"errors"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"gorm.io/gorm"
)

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) List() ([]model.User, error) {
	return u.users.FindAll()
}

// UpdateInput carries the admin-editable fields; nil means "leave as is".
type UpdateInput struct {
	Name         *string `json:"name"`
	Department   *string `json:"department"`
	Role         *string `json:"role"`
	ManagerID    *uint   `json:"manager_id"`
	LeaveBalance *int    `json:"leave_balance"`
	IsActive     *bool   `json:"is_active"`
}

func (u *UserUsecase) Update(id uint, input UpdateInput) (*model.User, error) {
	user, err := u.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Role != nil {
		if !model.ValidRole(*input.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.ManagerID != nil {
		user.ManagerID = input.ManagerID
	}
	if input.LeaveBalance != nil {
		user.LeaveBalance = *input.LeaveBalance
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := u.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-deletes: the account stays for history, login is refused.
func (u *UserUsecase) Deactivate(id uint) error {
	if err := u.users.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
