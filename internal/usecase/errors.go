package usecase

import "errors"

// Every failure path surfaces one of these so handlers can map kinds to
// status codes and return an actionable message.
var (
	ErrInvalidDateRange    = errors.New("end date must be on or after start date")
	ErrInvalidLeaveType    = errors.New("invalid leave type")
	ErrInvalidStatus       = errors.New("status must be approved or rejected")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrAlreadyReviewed     = errors.New("leave request already reviewed")

	// Hierarchy policy violations, in rule order.
	ErrManagerNeedsAdmin = errors.New("only admin can approve manager leave requests")
	ErrAdminNeedsAdmin   = errors.New("only admin can approve admin leave requests")
	ErrSelfReview        = errors.New("you cannot approve your own leave request")

	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("please provide email and password")
	ErrUserNotFound       = errors.New("user not found")
)

// IsForbidden reports whether err is one of the hierarchy violations.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrManagerNeedsAdmin) ||
		errors.Is(err, ErrAdminNeedsAdmin) ||
		errors.Is(err, ErrSelfReview)
}

// IsBadRequest reports whether err is a caller mistake rather than a
// server-side failure.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidLeaveType) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrAlreadyReviewed) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrMissingCredentials)
}
