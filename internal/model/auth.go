package model

import "errors"

// ErrAuthRequired is returned by mutating operations invoked without an
// authenticated capability.
var ErrAuthRequired = errors.New("authentication required")

// Auth is the capability passed to every mutating operation instead of
// ambient session state.
type Auth interface {
	Authenticated() bool
}

// SessionAuth carries the login state resolved from a request's session.
type SessionAuth struct {
	LoggedIn bool
}

func (s SessionAuth) Authenticated() bool { return s.LoggedIn }

// AdminAuth is used by trusted non-HTTP callers (the importer CLI, tests).
type AdminAuth struct{}

func (AdminAuth) Authenticated() bool { return true }
