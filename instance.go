/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"fmt"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
)

// LoadInstance loads T's named template and returns its root object as a *T.
// The template name is ResourceNameFor[T]: the type's own name unless the
// type overrides it via ResourceNamed.
//
// This is the self-rooted authoring pattern: the type itself is the root of
// the template's object graph. A missing template, a malformed document, or a
// root of the wrong concrete type panics with a diagnostic; none of these are
// recoverable at runtime.
func LoadInstance[T any](l host.ResourceLoader) *T {
	name := ResourceNameFor[T]()
	root, _, err := l.Load(name, nil)
	if err != nil {
		panic(fmt.Errorf("load expecting %s: %w", typeNameOf(new(T)), err))
	}
	typed, ok := root.(*T)
	if !ok {
		panic(errors.NewTypeMismatchError(name, typeNameOf(new(T)), typeNameOf(root)))
	}
	return typed
}

// LoadContent loads T's named template with owner as the wiring target and
// returns the template's top-level objects, in document order, for the caller
// to attach as children of owner.
//
// This is the owner-composed authoring pattern, the complement of
// LoadInstance: here the type is not the template's root but the object the
// template's content is composed into. A given type should use one pattern or
// the other, never both. Failures panic, as in LoadInstance.
func LoadContent[T any](l host.ResourceLoader, owner *T) []any {
	name := ResourceNameFor[T]()
	_, topLevel, err := l.Load(name, owner)
	if err != nil {
		panic(fmt.Errorf("load content for %s: %w", typeNameOf(owner), err))
	}
	return topLevel
}
