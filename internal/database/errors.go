package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup for a row that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSelfDelete reports an attempt by a user to delete their own account.
	ErrSelfDelete = errors.New("a user may not delete their own account")
	// ErrDuplicateID reports an insert with an already-used task code.
	ErrDuplicateID = errors.New("task id already exists")
)

// Entity names used in wrapped operation errors.
const (
	EntityUser    = "user"
	EntityTask    = "task"
	EntityEntry   = "entry"
	EntitySetting = "setting"
)

// OpError carries which operation on which entity failed. Ref is the row
// identifier rendered as text (task codes are strings, the rest int64).
type OpError struct {
	Op     string
	Entity string
	Ref    string
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Ref != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.Ref, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op, ref string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Entity: entity, Ref: ref, Err: err}
}

func wrapIDErr(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	ref := ""
	if id > 0 {
		ref = fmt.Sprintf("%d", id)
	}
	return &OpError{Op: op, Entity: entity, Ref: ref, Err: err}
}
