package errors

import "net/http"

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeAlreadyExists  Code = "already_exists"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeConflict       Code = "conflict"
	CodeInternal       Code = "internal_error"
	CodeUnavailable    Code = "unavailable"
)

// ============================================================================
// Authentication Errors
// ============================================================================

var (
	// ErrNotAuthenticated is returned when no bearer token is supplied
	ErrNotAuthenticated = New(DomainAuth, "not_authenticated", http.StatusUnauthorized,
		"Not authenticated")

	// ErrInvalidCredentials is returned when login fails. The message never
	// reveals whether the user exists or the password was wrong.
	ErrInvalidCredentials = New(DomainAuth, "invalid_credentials", http.StatusUnauthorized,
		"Incorrect email or password")

	// ErrCredentialsInvalid is returned when a bearer token is malformed,
	// expired, or resolves to no user. All three collapse into one message.
	ErrCredentialsInvalid = New(DomainAuth, "invalid_token", http.StatusUnauthorized,
		"Could not validate credentials")
)

// ============================================================================
// User Errors
// ============================================================================

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = New(DomainUser, CodeNotFound, http.StatusNotFound,
		"User not found")

	// ErrUsernameExists is returned when the username is already registered
	ErrUsernameExists = New(DomainUser, CodeAlreadyExists, http.StatusConflict,
		"Username already exists")

	// ErrEmailExists is returned when the email is already registered
	ErrEmailExists = New(DomainUser, "email_exists", http.StatusConflict,
		"Email already exists")
)

// ============================================================================
// Exercise Errors
// ============================================================================

var (
	// ErrExerciseNotFound is returned when an exercise cannot be found
	ErrExerciseNotFound = New(DomainExercise, CodeNotFound, http.StatusNotFound,
		"Exercise not found")

	// ErrMuscleGroupNotFound is returned when a muscle group cannot be found
	ErrMuscleGroupNotFound = New(DomainExercise, "muscle_group_not_found", http.StatusNotFound,
		"Muscle group not found")
)

// ============================================================================
// Training Errors
// ============================================================================

var (
	// ErrTrainingNotFound is returned when a training is absent or owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrTrainingNotFound = New(DomainTraining, CodeNotFound, http.StatusNotFound,
		"Training not found")
)

// ============================================================================
// Database Errors
// ============================================================================

var (
	// ErrDatabaseQuery is returned when a database query fails
	ErrDatabaseQuery = New(DomainDatabase, "query_failed", http.StatusInternalServerError,
		"Database query failed")

	// ErrDatabaseTransaction is returned when a database transaction fails
	ErrDatabaseTransaction = New(DomainDatabase, "transaction_failed", http.StatusInternalServerError,
		"Database transaction failed")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	// ErrValidationFailed is returned when request validation fails
	ErrValidationFailed = New(DomainValidation, "validation_failed", http.StatusBadRequest,
		"Validation failed")

	// ErrInvalidJSON is returned when request body parsing fails
	ErrInvalidJSON = New(DomainValidation, "invalid_json", http.StatusBadRequest,
		"Invalid JSON")

	// ErrUnsupportedContentType is returned for request bodies in a content
	// type the endpoint does not accept
	ErrUnsupportedContentType = New(DomainValidation, "unsupported_content_type", http.StatusBadRequest,
		"Unsupported content type")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrInternal is a generic internal server error
	ErrInternal = New(DomainInternal, CodeInternal, http.StatusInternalServerError,
		"Internal server error")
)
