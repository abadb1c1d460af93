// Copyright 2024-2026 Aiku AI

package mock

import (
	"errors"
	"fmt"
)

// Configuration-precondition errors. These fail an operation before any
// mutation or emission happens.
var (
	// ErrNoEnvironment means the mocker was operated on before Use bound
	// an environment to it.
	ErrNoEnvironment = errors.New("no environment bound to mocker, call Use first")
	// ErrNoLoginUser means the operation needs a login user and none is set.
	ErrNoLoginUser = errors.New("no login user set")
	// ErrNotStarted means a puppet operation was called before Start.
	ErrNotStarted = errors.New("puppet is not started")
)

// ErrNoContacts is the invalid-state error for room creation against an
// empty contact pool.
var ErrNoContacts = errors.New("there are no contacts in the environment, so you can not create a room")

// ErrNotFound is the match target for lookup misses. Use errors.As with
// *NotFoundError to get the offending kind and id.
var ErrNotFound = errors.New("not in environment")

// NotFoundError reports a lookup for an id that does not exist in the
// relevant pool. It is distinct from the precondition errors above so
// callers can tell "this id is wrong" from "preconditions unmet".
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s <%s> not in environment", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
