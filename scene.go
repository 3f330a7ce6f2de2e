/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"fmt"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
)

// SceneSourceFor derives the scene-graph name for T: the SceneSourced
// override when present, otherwise the type's own derived identifier.
func SceneSourceFor[T any]() string {
	var zero T
	if p, ok := any(&zero).(SceneSourced); ok {
		return p.SceneSource()
	}
	if p, ok := any(zero).(SceneSourced); ok {
		return p.SceneSource()
	}
	return Identifier[T]()
}

// InstantiateScene materializes a *T from its scene graph.
//
// The common case declares nothing: the graph is named after the type and T
// is its initial scene. A type implementing SceneSourced instead names a
// shared graph explicitly, and the scene picked within it is the one whose
// identifier is Identifier[T] (so the per-scene identifier follows the same
// default-and-override rule as everything else).
//
// A missing graph, a missing scene identifier, or a scene of the wrong
// concrete type panics with a diagnostic naming the graph and the scene
// sought.
func InstantiateScene[T any](l host.SceneGraphLoader) *T {
	source := SceneSourceFor[T]()
	graph, err := l.LoadSceneGraph(source)
	if err != nil {
		panic(fmt.Errorf("instantiate expecting %s: %w", typeNameOf(new(T)), err))
	}

	var zero T
	_, explicit := any(&zero).(SceneSourced)
	if !explicit {
		_, explicit = any(zero).(SceneSourced)
	}

	var obj any
	if explicit {
		obj, err = graph.Instantiate(Identifier[T]())
	} else {
		obj, err = graph.InstantiateInitial()
	}
	if err != nil {
		panic(fmt.Errorf("instantiate expecting %s: %w", typeNameOf(new(T)), err))
	}

	typed, ok := obj.(*T)
	if !ok {
		panic(errors.NewTypeMismatchError(source+"/"+Identifier[T](), typeNameOf(new(T)), typeNameOf(obj)))
	}
	return typed
}
