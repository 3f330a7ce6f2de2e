/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host

// Location addresses a slot inside a container view, such as a row in a list
// or an item in a grid section.
type Location struct {
	Section int
	Item    int
}

// Registry is the host framework's mechanism for registering and dequeuing
// reusable components by string identifier.
type Registry interface {
	// Register installs a factory under the given identifier. Future
	// dequeues of that identifier yield objects produced by the factory.
	Register(identifier string, factory func() any) error

	// RegisterResource installs a named resource under the given identifier.
	// Future dequeues of that identifier yield the resource's root object.
	RegisterResource(identifier string, resourceName string) error

	// Dequeue returns an object for the identifier at the given location.
	// The registry retains ownership of the returned object.
	Dequeue(identifier string, loc Location) (any, error)
}

// ResourceLoader loads a named, externally authored object-graph template.
//
// With a nil owner the template stands alone and root is its first top-level
// object. With a non-nil owner the template's connections are wired into the
// owner instead, and the caller attaches the returned top-level objects
// itself.
type ResourceLoader interface {
	Load(name string, owner any) (root any, topLevel []any, err error)
}

// SceneGraph is a named collection of pre-built scene definitions, one of
// which may be marked initial.
type SceneGraph interface {
	InstantiateInitial() (any, error)
	Instantiate(sceneID string) (any, error)
}

// SceneGraphLoader resolves a scene graph by name.
type SceneGraphLoader interface {
	LoadSceneGraph(name string) (SceneGraph, error)
}

// AttributeReceiver is implemented by objects that accept template attributes
// during materialization.
type AttributeReceiver interface {
	SetAttribute(key string, value any)
}

// Container is implemented by objects that accept template children during
// materialization.
type Container interface {
	AddChild(child any)
}

// OutletConnector is implemented by owners that receive references to
// ID-carrying objects when a template is loaded as their content.
type OutletConnector interface {
	ConnectOutlet(id string, object any)
}
