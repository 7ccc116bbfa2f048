package payrollerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrUserIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"userId is required",
		http.StatusBadRequest,
	)
)
