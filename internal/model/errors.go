package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("model: invalid task input")
	ErrDuplicate   = errors.New("model: task already exists")
	ErrNotFound    = errors.New("model: task not found")
	ErrCompleted   = errors.New("model: completed task cannot be edited")
	ErrPersistence = errors.New("model: persistence failed")
)

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: task %s is required", e.Field)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("model: task %q already exists", e.Name)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model: task %q not found", e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type CompletedError struct {
	Name string
}

func (e *CompletedError) Error() string {
	return fmt.Sprintf("model: task %q is completed and cannot be edited", e.Name)
}

func (e *CompletedError) Is(target error) bool { return target == ErrCompleted }

// PersistenceError wraps a failure to encode or store the task list.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("model: %s tasks: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
