package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports which required inbound fields were absent. It is
// returned synchronously to the caller before any background work is
// scheduled.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// IOError wraps template copy/read/write failures from the materializer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// AuthError indicates hosting-provider credentials are absent or rejected.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s authentication failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s credentials are not configured", e.Provider)
}

func (e *AuthError) Unwrap() error { return e.Err }

// DuplicateNameError indicates the hosting provider rejected a repository
// name that already exists. Instance names are supposed to be unique per
// call, so hitting this means suffix generation collided or a previous run
// for the same name was retried.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("repository name already exists: %s", e.Name)
}

// PushError wraps a version-control transport failure (network, permission,
// empty commit).
type PushError struct {
	Repo string
	Err  error
}

func (e *PushError) Error() string { return fmt.Sprintf("push to %s failed: %v", e.Repo, e.Err) }
func (e *PushError) Unwrap() error { return e.Err }

// DeployError carries the platform's HTTP status and error body when a
// deployment request is rejected.
type DeployError struct {
	Status int
	Body   string
}

func (e *DeployError) Error() string {
	return fmt.Sprintf("deploy rejected with status %d: %s", e.Status, e.Body)
}

// PersistenceError wraps status-store write failures. During the failure
// path of a run it is logged, never propagated.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError is best-effort only; it never affects campaign status.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s failed: %v", e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
