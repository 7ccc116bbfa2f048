package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-attendance/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	HourlyRate float64 `json:"hourlyRate" validate:"gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestToHTTP_AppError(t *testing.T) {
	err := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

	got := apperror.ToHTTP(fmt.Errorf("lookup: %w", err))

	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, apperror.CodeNotFound, got.Code)
	assert.Equal(t, "Employee not found", got.Message)
	assert.Nil(t, got.Details)
}

func TestToHTTP_ValidationDetails(t *testing.T) {
	err := newValidator().Struct(registerInput{Email: "nope", HourlyRate: -1})
	require.Error(t, err)

	got := apperror.ToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, apperror.CodeValidationError, got.Code)
	assert.Equal(t, "Name is required", got.Message)

	details, ok := got.Details.([]apperror.FieldError)
	require.True(t, ok)
	require.Len(t, details, 3)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "Email must be a valid email", details[1].Message)
	assert.Equal(t, "Hourly Rate must be greater than or equal to 0", details[2].Message)
}

func TestToHTTP_InternalHidesDetailOutsideDevelopment(t *testing.T) {
	apperror.Init(false)
	got := apperror.ToHTTP(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, apperror.CodeInternalError, got.Code)
	assert.Equal(t, "An unexpected error occurred", got.Message)
	assert.Nil(t, got.Details)
}

func TestToHTTP_InternalShowsDetailInDevelopment(t *testing.T) {
	apperror.Init(true)
	defer apperror.Init(false)

	got := apperror.ToHTTP(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "pq: connection refused", got.Details)
}

func TestAppError_IsMatchesWrappedSentinel(t *testing.T) {
	sentinel := apperror.Validation("Already checked in today")
	wrapped := apperror.Wrap(errors.New("duplicate key"), sentinel.Code, sentinel.Message, sentinel.HTTPStatus)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, apperror.Validation("Already checked out today"))
}
