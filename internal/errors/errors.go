package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidEmail is returned when an email address fails format validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned when a password has fewer than 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrIncorrectPassword is returned when login credentials do not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrDuplicateApplication is returned when the user already tracks the job link.
	ErrDuplicateApplication = errors.New("application with this job link already exists")
	// ErrApplicationNotFound is returned when an application id does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidEmail:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case ErrPasswordTooShort:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrIncorrectPassword:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_PASSWORD")
	case ErrDuplicateApplication:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_JOB_LINK")
	case ErrApplicationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case ErrInvalidRefreshToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
