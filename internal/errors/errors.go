// Package errors holds the typed failure taxonomy of the distribution
// pipeline. Handlers map these onto HTTP status codes in one place.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValidRecords is raised when a parsed file holds no row with
	// a non-empty FirstName or Phone
	ErrNoValidRecords = errors.New("no valid customers found, file must contain FirstName or Phone values")

	// ErrNoActiveAgents is raised when the roster holds no active agent
	ErrNoActiveAgents = errors.New("no active agents found, create agents first")

	// ErrPayloadTooLarge is raised for uploads above the size ceiling
	ErrPayloadTooLarge = errors.New("uploaded file exceeds the allowed size limit")

	// ErrAgentLimit is raised when the roster cap is reached
	ErrAgentLimit = errors.New("agent limit reached (maximum 5 agents allowed)")

	// ErrStorageTimeout is raised when a backing store call did not
	// answer within its deadline
	ErrStorageTimeout = errors.New("storage did not respond in time")

	// ErrInvalidCredentials is raised on failed login attempts
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UnsupportedFormatError means the declared file extension is not one of
// the accepted spreadsheet formats
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q, only .csv, .xls and .xlsx are allowed", e.Ext)
}

// ParseError wraps the underlying parser failure for malformed content
type ParseError struct {
	cause error
}

func NewParseError(cause error) *ParseError {
	return &ParseError{cause: cause}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse file, ensure it is properly formatted - %v", e.cause)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// NotFoundError means the requested entity does not exist
type NotFoundError struct {
	entity string
	id     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{entity: entity, id: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.entity, e.id)
}

// DuplicateEmailError means the email is already taken, emails are
// treated as globally unique case-insensitively
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("account with email %s already exists", e.Email)
}

// PartialAssignmentError names the agents whose assignment append failed
// during the fan-out. It never aborts the upload - agents that succeeded
// keep their customers, the caller retries just the listed ones.
type PartialAssignmentError struct {
	AgentIDs []string
}

func (e *PartialAssignmentError) Error() string {
	return fmt.Sprintf("failed to append assignments for %d agent(s): %v", len(e.AgentIDs), e.AgentIDs)
}
