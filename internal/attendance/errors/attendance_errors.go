package attendanceerrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeValidationError,
		"Already checked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeValidationError,
		"Already checked out today",
		http.StatusBadRequest,
	)
	ErrNoCheckIn = apperror.New(
		apperror.CodeValidationError,
		"No check-in found for today",
		http.StatusBadRequest,
	)
	ErrAttendanceDayTaken = apperror.New(
		apperror.CodeConflict,
		"Attendance already exists for that day",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeValidationError,
		"Check-out must not be before check-in",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidationError,
		"Invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate and endDate must be YYYY-MM-DD or RFC3339, with endDate not before startDate",
		http.StatusBadRequest,
	)
)
