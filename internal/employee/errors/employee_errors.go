package employeeerrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeForbidden,
		"Not authorized",
		http.StatusForbidden,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidationError,
		"Invalid role",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidationError,
		"Invalid status",
		http.StatusBadRequest,
	)
)
