package user

import (
	"errors"
	"strings"

	usererrors "go-attendance/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_users_email" {
			return usererrors.ErrEmailAlreadyExists
		}
		if pgErr.Code == "23514" && pgErr.ConstraintName == "chk_users_hourly_rate" {
			return usererrors.ErrInvalidHourlyRate
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_email") {
		return usererrors.ErrEmailAlreadyExists
	}

	return err
}
