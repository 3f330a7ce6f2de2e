package registry

import (
	"fmt"
	"sort"
)

// FactoryFunc constructs a fresh, unconfigured instance of a template class.
type FactoryFunc func() any

// classRegistry holds the mapping from a template class name (like "Label" or
// "StackView") to its factory.
var classRegistry = make(map[string]FactoryFunc)

// RegisterClass registers a factory for a given class name.
// If a factory is already registered for the name, it panics to prevent accidental overrides.
func RegisterClass(name string, fn FactoryFunc) {
	if _, exists := classRegistry[name]; exists {
		panic(fmt.Sprintf("class registry: class %q already registered", name))
	}
	classRegistry[name] = fn
}

// ClassFactory returns the registered factory for the given class name.
// If no factory is registered, it returns an error.
func ClassFactory(name string) (FactoryFunc, error) {
	fn, ok := classRegistry[name]
	if !ok {
		return nil, fmt.Errorf("class registry: no class registered for name %q", name)
	}
	return fn, nil
}

// RegisteredClasses returns the sorted names of all registered classes.
func RegisteredClasses() []string {
	names := make([]string, 0, len(classRegistry))
	for name := range classRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
