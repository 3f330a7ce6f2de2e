/*
Package host defines the collaborator surface this library expects from a UI
framework: a string-keyed component registry, a named-resource loader, and a
scene-graph loader.

The interfaces deliberately mirror the three primitives the pattern consumes:

	registry.Register(identifier, factory)        // install a factory under a key
	registry.Dequeue(identifier, location)        // obtain an instance at a location
	loader.Load(name, owner)                      // load a named object-graph template

All operations are direct, blocking calls. The library holds no mutable state
of its own; whatever state an implementation carries (entries, caches) belongs
to that implementation, and the host framework's usual single-UI-thread
confinement is assumed rather than enforced here.

Implementations:
  - memory: in-memory host for tests and embedding
  - yamlfs: YAML templates read from an fs.FS
  - ddb: YAML templates fetched from a DynamoDB catalog
*/
package host
