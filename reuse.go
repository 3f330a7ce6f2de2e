/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"fmt"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
)

// TemplateBacked marks a participating type whose instances are produced by
// loading its named template instead of by bare construction. Embed it in the
// type declaration:
//
//	type AvatarCell struct {
//	    reusable.TemplateBacked
//	    Image any
//	}
//
// A type is either template-backed or class-backed, never both; the embed is
// the declaration.
type TemplateBacked struct{}

func (TemplateBacked) templateBacked() {}

type templateBacked interface {
	templateBacked()
}

// Register installs T with the host registry under Identifier[T].
//
// Class-backed types (the default) register a factory constructing a fresh
// *T. Types embedding TemplateBacked register their resource name instead,
// so the registry's dequeue path loads the template. Registration itself is
// a thin pass-through; its errors are the host's (for example a strict
// registry rejecting a duplicate identifier).
func Register[T any](r host.Registry) error {
	id := Identifier[T]()
	var zero T
	if _, ok := any(zero).(templateBacked); ok {
		return r.RegisterResource(id, ResourceNameFor[T]())
	}
	return r.Register(id, func() any { return new(T) })
}

// Dequeue returns a *T from the host registry at the given location. The
// identifier is derived from the type parameter at the call site, so the
// caller never spells it out and never casts.
//
// The returned pointer is non-owning: the registry keeps the instance, the
// caller configures it in place. A missing entry or an entry of the wrong
// concrete type is a setup bug (mismatched registration vs. expected type)
// and panics with a diagnostic naming the identifier and the expected type.
// There is no nil-returning mode.
func Dequeue[T any](r host.Registry, loc host.Location) *T {
	id := Identifier[T]()
	obj, err := r.Dequeue(id, loc)
	if err != nil {
		// The diagnostic must name both the identifier and the expected
		// type; the host error carries only the identifier.
		panic(fmt.Errorf("dequeue expecting %s: %w", typeNameOf(new(T)), err))
	}
	typed, ok := obj.(*T)
	if !ok {
		panic(errors.NewTypeMismatchError(id, typeNameOf(new(T)), typeNameOf(obj)))
	}
	return typed
}
