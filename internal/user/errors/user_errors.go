package usererrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeValidationError,
		"Email already exists",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidHourlyRate = apperror.New(
		apperror.CodeValidationError,
		"Invalid hourly rate",
		http.StatusBadRequest,
	)
)
