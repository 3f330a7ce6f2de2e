/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"fmt"
	"reflect"
)

// IdentifierProvider lets a participating type override its derived reuse
// identifier. When absent, the identifier is the type's unqualified declared
// name.
type IdentifierProvider interface {
	ReuseIdentifier() string
}

// ResourceNamed lets a template-backed type override the name of its backing
// resource. When absent, the resource name equals the reuse identifier.
type ResourceNamed interface {
	ResourceName() string
}

// SceneSourced marks a type whose scenes live in an explicitly named scene
// graph rather than one named after the type. Several controller types can
// share one graph this way, each selected by its own scene identifier.
type SceneSourced interface {
	SceneSource() string
}

// Identifier derives the reuse identifier for T. An IdentifierProvider
// implementation on T (or *T) wins; otherwise the identifier is T's bare
// declared name, without any package qualifier. Pointer type parameters
// resolve to their element type's name.
//
// The derivation is a pure computation: repeated calls always yield the same
// string, and no validation is performed on an override value.
func Identifier[T any]() string {
	var zero T
	if p, ok := any(&zero).(IdentifierProvider); ok {
		return p.ReuseIdentifier()
	}
	if p, ok := any(zero).(IdentifierProvider); ok {
		return p.ReuseIdentifier()
	}
	return typeName[T]()
}

// ResourceNameFor derives the backing resource name for T: the ResourceNamed
// override when present, otherwise Identifier[T].
func ResourceNameFor[T any]() string {
	var zero T
	if p, ok := any(&zero).(ResourceNamed); ok {
		return p.ResourceName()
	}
	if p, ok := any(zero).(ResourceNamed); ok {
		return p.ResourceName()
	}
	return Identifier[T]()
}

// typeName returns the unqualified declared name of T, dereferencing pointer
// types so that Identifier[Foo] and Identifier[*Foo] agree.
func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// typeNameOf renders the dynamic type of obj for diagnostics.
func typeNameOf(obj any) string {
	return fmt.Sprintf("%T", obj)
}
