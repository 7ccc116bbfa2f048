package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error onto status, code, message and details.
// Unknown errors collapse into a generic 500; the cause is only exposed in development.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		out := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if details := validationDetails(appErr.Err); details != nil {
			out.Details = details
		} else if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil && exposeInternal.Load() {
			out.Details = appErr.Err.Error()
		}
		return out
	}

	if details := validationDetails(err); details != nil {
		mapped := MapValidationError(err)
		return HTTPError{
			Status:  mapped.HTTPStatus,
			Code:    mapped.Code,
			Message: mapped.Message,
			Details: details,
		}
	}

	out := HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
	if exposeInternal.Load() {
		out.Details = err.Error()
	}
	return out
}
