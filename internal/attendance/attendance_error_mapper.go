package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-attendance/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

func mapRepositoryError(err error) error {
	return mapError(err, attendanceerrors.ErrAlreadyCheckedIn)
}

// mapUpdateError reports an edit that lands on an occupied day as a conflict.
func mapUpdateError(err error) error {
	return mapError(err, attendanceerrors.ErrAttendanceDayTaken)
}

func mapError(err error, dayTaken error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_attendance_user_day":
			return dayTaken
		case pgErr.Code == checkViolation && pgErr.ConstraintName == "chk_attendance_checkout":
			return attendanceerrors.ErrCheckOutBeforeCheckIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_day") {
		return dayTaken
	}

	return err
}
