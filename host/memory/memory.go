/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides in-memory implementations of the host interfaces
// for testing and embedding
package memory

import (
	"sync"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
)

// Registry is an in-memory implementation of host.Registry
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() any
	resources map[string]string
	loader    host.ResourceLoader
	strict    bool
	dequeues  map[string]int
}

// NewRegistry creates a new in-memory Registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() any),
		resources: make(map[string]string),
		dequeues:  make(map[string]int),
	}
}

// WithResourceLoader attaches the loader used to serve resource-backed entries
func (r *Registry) WithResourceLoader(l host.ResourceLoader) *Registry {
	r.loader = l
	return r
}

// WithStrictIdentifiers makes duplicate registration under one identifier an
// error instead of a silent replacement
func (r *Registry) WithStrictIdentifiers() *Registry {
	r.strict = true
	return r
}

// Register installs a factory under the given identifier
func (r *Registry) Register(identifier string, factory func() any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkDuplicate(identifier); err != nil {
		return err
	}
	delete(r.resources, identifier)
	r.factories[identifier] = factory
	return nil
}

// RegisterResource installs a named resource under the given identifier
func (r *Registry) RegisterResource(identifier string, resourceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkDuplicate(identifier); err != nil {
		return err
	}
	delete(r.factories, identifier)
	r.resources[identifier] = resourceName
	return nil
}

// checkDuplicate enforces strict mode; callers hold the lock.
func (r *Registry) checkDuplicate(identifier string) error {
	if !r.strict {
		return nil
	}
	_, inFactories := r.factories[identifier]
	_, inResources := r.resources[identifier]
	if inFactories || inResources {
		return errors.NewAlreadyRegisteredError("registry", identifier)
	}
	return nil
}

// Dequeue produces an object for the identifier at the given location.
// Class-backed entries construct a fresh object; resource-backed entries load
// their template's root through the attached loader.
func (r *Registry) Dequeue(identifier string, loc host.Location) (any, error) {
	r.mu.Lock()
	factory, inFactories := r.factories[identifier]
	resourceName, inResources := r.resources[identifier]
	loader := r.loader
	r.dequeues[identifier]++
	r.mu.Unlock()

	switch {
	case inFactories:
		return factory(), nil
	case inResources:
		if loader == nil {
			return nil, errors.NewNotFoundError("resource loader", resourceName)
		}
		root, _, err := loader.Load(resourceName, nil)
		if err != nil {
			return nil, err
		}
		return root, nil
	default:
		return nil, errors.NewNotFoundError("registry", identifier)
	}
}

// DequeueCount reports how many times the identifier has been dequeued
func (r *Registry) DequeueCount(identifier string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dequeues[identifier]
}

// ResourceLoader is an in-memory implementation of host.ResourceLoader
type ResourceLoader struct {
	mu        sync.RWMutex
	resources map[string]func(owner any) (any, []any)
}

// NewResourceLoader creates a new in-memory ResourceLoader
func NewResourceLoader() *ResourceLoader {
	return &ResourceLoader{
		resources: make(map[string]func(owner any) (any, []any)),
	}
}

// WithResource registers a producer for the named resource. The producer
// receives the owner (nil for self-rooted loads) and returns the root object
// and the ordered top-level objects
func (l *ResourceLoader) WithResource(name string, produce func(owner any) (any, []any)) *ResourceLoader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resources[name] = produce
	return l
}

// WithRoot registers a resource producing a single root object
func (l *ResourceLoader) WithRoot(name string, factory func() any) *ResourceLoader {
	return l.WithResource(name, func(any) (any, []any) {
		root := factory()
		return root, []any{root}
	})
}

// Load resolves the named resource
func (l *ResourceLoader) Load(name string, owner any) (any, []any, error) {
	l.mu.RLock()
	produce, ok := l.resources[name]
	l.mu.RUnlock()

	if !ok {
		return nil, nil, errors.NewNotFoundError("resource loader", name)
	}
	root, topLevel := produce(owner)
	return root, topLevel, nil
}

// SceneGraph is an in-memory implementation of host.SceneGraph
type SceneGraph struct {
	mu      sync.RWMutex
	name    string
	initial string
	scenes  map[string]func() any
}

// NewSceneGraph creates a new in-memory SceneGraph with the given name
func NewSceneGraph(name string) *SceneGraph {
	return &SceneGraph{
		name:   name,
		scenes: make(map[string]func() any),
	}
}

// WithScene registers a scene factory under the given scene identifier
func (g *SceneGraph) WithScene(sceneID string, factory func() any) *SceneGraph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scenes[sceneID] = factory
	return g
}

// WithInitialScene registers a scene factory and marks it initial
func (g *SceneGraph) WithInitialScene(sceneID string, factory func() any) *SceneGraph {
	g.WithScene(sceneID, factory)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initial = sceneID
	return g
}

// InstantiateInitial materializes the scene marked initial
func (g *SceneGraph) InstantiateInitial() (any, error) {
	g.mu.RLock()
	initial := g.initial
	g.mu.RUnlock()

	if initial == "" {
		return nil, errors.NewNotFoundError("scene graph "+g.name, "initial scene")
	}
	return g.Instantiate(initial)
}

// Instantiate materializes the scene with the given identifier
func (g *SceneGraph) Instantiate(sceneID string) (any, error) {
	g.mu.RLock()
	factory, ok := g.scenes[sceneID]
	g.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError("scene graph "+g.name, sceneID)
	}
	return factory(), nil
}

// SceneGraphLoader is an in-memory implementation of host.SceneGraphLoader
type SceneGraphLoader struct {
	mu     sync.RWMutex
	graphs map[string]host.SceneGraph
}

// NewSceneGraphLoader creates a new in-memory SceneGraphLoader
func NewSceneGraphLoader() *SceneGraphLoader {
	return &SceneGraphLoader{
		graphs: make(map[string]host.SceneGraph),
	}
}

// WithSceneGraph registers a scene graph under the given name
func (l *SceneGraphLoader) WithSceneGraph(name string, graph host.SceneGraph) *SceneGraphLoader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.graphs[name] = graph
	return l
}

// LoadSceneGraph resolves a scene graph by name
func (l *SceneGraphLoader) LoadSceneGraph(name string) (host.SceneGraph, error) {
	l.mu.RLock()
	graph, ok := l.graphs[name]
	l.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError("scene graph loader", name)
	}
	return graph, nil
}
