// Package errors provides sentinel errors and custom error types for the scopesync application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBacklogNotFound indicates that the backlog document could not be read
	ErrBacklogNotFound = errors.New("backlog not found")

	// ErrBacklogMalformed indicates that the backlog document could not be parsed
	ErrBacklogMalformed = errors.New("backlog malformed")

	// ErrRemoteUnavailable indicates that the open-issue listing failed
	ErrRemoteUnavailable = errors.New("remote issue listing unavailable")
)

// BacklogLoadError represents a fatal failure to load the backlog document
type BacklogLoadError struct {
	Path string
	Err  error
}

func (e *BacklogLoadError) Error() string {
	return fmt.Sprintf("failed to load backlog %s: %v", e.Path, e.Err)
}

func (e *BacklogLoadError) Unwrap() error {
	return e.Err
}

// NewBacklogLoadError creates a new BacklogLoadError
func NewBacklogLoadError(path string, err error) *BacklogLoadError {
	return &BacklogLoadError{Path: path, Err: err}
}

// APICallError represents a failed call to the issue tracker API.
// These are soft failures: the orchestrator logs them and continues.
type APICallError struct {
	Op     string // "list", "add-label", "close", "create"
	Detail string // issue title or number, for the run log
	Err    error
}

func (e *APICallError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRemoteUnavailable and this is a listing failure
func (e *APICallError) Is(target error) bool {
	return target == ErrRemoteUnavailable && e.Op == "list"
}

// NewAPICallError creates a new APICallError
func NewAPICallError(op, detail string, err error) *APICallError {
	return &APICallError{Op: op, Detail: detail, Err: err}
}
