package usecase

import (
	"errors"
	"time"

	"leave-management-backend/config"
	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthUsecase(users repository.UserRepository, cfg *config.Config) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg}
}

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	ManagerID    *uint  `json:"manager_id"`
	LeaveBalance int    `json:"leave_balance"`
}

func (u *AuthUsecase) Register(input RegisterInput) (*model.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	if input.Role == "" {
		input.Role = model.RoleEmployee
	}
	if !model.ValidRole(input.Role) {
		return nil, "", ErrInvalidRole
	}

	if _, err := u.users.FindByEmail(input.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	balance := input.LeaveBalance
	if balance <= 0 {
		balance = u.cfg.DefaultLeaveBalance
	}

	user := model.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
		Department:   input.Department,
		Role:         input.Role,
		ManagerID:    input.ManagerID,
		LeaveBalance: balance,
		IsActive:     true,
	}
	if err := u.users.Create(&user); err != nil {
		return nil, "", err
	}

	token, err := u.generateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (u *AuthUsecase) Login(email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	// Deactivated accounts keep their row but can no longer sign in.
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *AuthUsecase) Me(caller Identity) (*model.User, error) {
	user, err := u.users.FindByID(caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(u.cfg.JWTExpireHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
