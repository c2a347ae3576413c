package directory

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeNotAuthenticated = "not_authenticated"
	TextCodeNotAuthorized    = "not_authorized"
	TextCodeSessionExpired   = "session_expired"
	TextCodeTokenExpired     = "token_expired"
	TextCodeTokenMalformed   = "token_malformed"
	TextCodeUserNotFound     = "user_not_found"
	TextCodeInvalidPassword  = "invalid_password"
	TextCodeEmailExists      = "email_exists"
	TextCodeOrgNotFound      = "organisation_not_found"
)

// ErrNotAuthenticated is the guard rejection for requests without identity.
var ErrNotAuthenticated = errors.New("Not authenticated", errors.CategoryAuthz).
	WithTextCode(TextCodeNotAuthenticated).
	WithCode(errors.CodeUnauthorized)

// ErrNotAuthorized is the guard rejection for identities below the required role.
var ErrNotAuthorized = errors.New("Not authorized", errors.CategoryAuthz).
	WithTextCode(TextCodeNotAuthorized).
	WithCode(errors.CodeForbidden)

// ErrSessionExpired is the request-level failure for a present but
// unverifiable token, expired or tampered alike.
var ErrSessionExpired = errors.New("Your session expired.", errors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a correctly signed token is past its expiry.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned for corrupted or mis-signed tokens.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrUserNotFound is the sign-in failure for an unknown email.
var ErrUserNotFound = errors.New("No user found with this login credentials", errors.CategoryAuth).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidPassword is the sign-in failure for a known email with a bad password.
var ErrInvalidPassword = errors.New("Invalid password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidPassword).
	WithCode(errors.CodeUnauthorized)

// ErrEmailAlreadyExists is the sign-up failure for a duplicate email.
var ErrEmailAlreadyExists = errors.New("email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeConflict)

// ErrOrganisationNotFound is returned when an edit or delete targets a
// missing organisation.
var ErrOrganisationNotFound = errors.New("Organisation not found", errors.CategoryNotFound).
	WithTextCode(TextCodeOrgNotFound).
	WithCode(errors.CodeNotFound)

// ErrNoEmptyString rejects empty secrets before they reach the hasher.
var ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the low-level hash comparison failure.
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// isUniqueViolation classifies driver-level unique constraint failures so
// the store can report duplicates as a conflict. Covers sqlite and postgres
// phrasing; the constraint itself lives in the schema.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
