package apperrors

import (
	"net/http"
)

// Predefined domain errors, one per user-visible failure.

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

var ErrIncorrectPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Posts & feed ---

var ErrPostNotFound = New(
	CodeNotFound,
	"post",
	"Post not found",
	http.StatusNotFound,
)

var ErrEmptyComment = New(
	CodeValidationFailed,
	"validation",
	"Comment content must not be empty",
	http.StatusBadRequest,
)

// --- Media ---

var ErrFileRequired = New(
	CodeValidationFailed,
	"validation",
	"No file was uploaded",
	http.StatusBadRequest,
)

var ErrImageNotFound = New(
	CodeNotFound,
	"media",
	"Image not found",
	http.StatusNotFound,
)

var ErrUnsupportedImage = New(
	CodeValidationFailed,
	"validation",
	"The uploaded file is not a supported image",
	http.StatusBadRequest,
)

// --- Analysis ---

var ErrAnalysisNotFound = New(
	CodeNotFound,
	"analysis",
	"No skin analysis found for this user",
	http.StatusNotFound,
)

// ErrAnalysisService wraps a failed call to the external skin-analysis
// service. The upstream detail goes to the logs, not the client.
func ErrAnalysisService(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "analysis", "Skin analysis service unavailable", http.StatusBadGateway)
}
