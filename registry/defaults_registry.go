/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// defaultsRegistry associates Go types with attribute values applied to every
// materialized instance of that type, before the template's own attributes.

var (
	defaultsRegistry = make(map[reflect.Type]map[string]any)
	mu               sync.RWMutex
)

// RegisterDefaults associates a Go type T with default attribute values.
func RegisterDefaults[T any](attrs map[string]any) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	defaultsRegistry[t] = attrs
}

// DefaultsFor retrieves the default attributes registered for obj's type, if any.
// Pointer instances resolve to their element type.
func DefaultsFor(obj any) (map[string]any, bool) {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	mu.RLock()
	defer mu.RUnlock()
	attrs, ok := defaultsRegistry[t]
	return attrs, ok
}
