/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no entry exists for an identifier
	ErrNotFound = errors.New("no entry for identifier")

	// ErrTypeMismatch is returned when an entry's runtime type does not match the expected type
	ErrTypeMismatch = errors.New("runtime type mismatch")

	// ErrInvalidResource is returned when a template document is malformed
	ErrInvalidResource = errors.New("invalid resource")

	// ErrAlreadyRegistered is returned by strict registries on duplicate registration
	ErrAlreadyRegistered = errors.New("identifier already registered")
)

// NotFoundError reports an identifier with no entry in some scope
// (a registry, a resource loader, or a scene graph).
type NotFoundError struct {
	Scope      string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s has no entry for identifier %q", e.Scope, e.Identifier)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TypeMismatchError reports an entry whose concrete type is not the one the
// call site expected.
type TypeMismatchError struct {
	Identifier string
	Expected   string
	Actual     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("identifier %q expected type %s, got %s", e.Identifier, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// InvalidResourceError reports a template or scene-graph document that could
// not be parsed or built.
type InvalidResourceError struct {
	Name   string
	Reason string
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("resource %q is invalid: %s", e.Name, e.Reason)
}

func (e *InvalidResourceError) Is(target error) bool {
	return target == ErrInvalidResource
}

// AlreadyRegisteredError reports a duplicate registration under one identifier.
type AlreadyRegisteredError struct {
	Scope      string
	Identifier string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s already has an entry for identifier %q", e.Scope, e.Identifier)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(scope, identifier string) error {
	return &NotFoundError{Scope: scope, Identifier: identifier}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(identifier, expected, actual string) error {
	return &TypeMismatchError{Identifier: identifier, Expected: expected, Actual: actual}
}

// NewInvalidResourceError creates a new InvalidResourceError
func NewInvalidResourceError(name, reason string) error {
	return &InvalidResourceError{Name: name, Reason: reason}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(scope, identifier string) error {
	return &AlreadyRegisteredError{Scope: scope, Identifier: identifier}
}

// IsNotFound checks if an error is an identifier-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsInvalidResource checks if an error is an invalid resource error
func IsInvalidResource(err error) bool {
	return errors.Is(err, ErrInvalidResource)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}
