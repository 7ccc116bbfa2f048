package autherrors

import (
	"fmt"
	"go-attendance/internal/shared/apperror"
	"net/http"
)

const (
	CodeTokenMissing       = "TOKEN_MISSING"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeRoleMismatch       = "ROLE_MISMATCH"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidRole        = "INVALID_ROLE"
)

var (
	ErrTokenMissing = apperror.New(
		CodeTokenMissing,
		"Access denied. No token provided.",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		CodeTokenInvalid,
		"Invalid token.",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		CodeTokenExpired,
		"Token expired.",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		CodeUserNotFound,
		"User not found.",
		http.StatusUnauthorized,
	)
	ErrRoleMismatch = apperror.New(
		CodeRoleMismatch,
		"Invalid token or role mismatch.",
		http.StatusUnauthorized,
	)
	ErrInvalidCredentials = apperror.New(
		CodeInvalidCredentials,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidRole = apperror.New(
		CodeInvalidRole,
		"Invalid user role",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)

func ErrRoleNotAuthorized(role string) *apperror.AppError {
	return apperror.New(
		apperror.CodeForbidden,
		fmt.Sprintf("Access denied. Role '%s' is not authorized.", role),
		http.StatusForbidden,
	)
}
