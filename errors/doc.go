/*
Package errors defines the semantic error types for Reusable.

There are exactly two kinds of failure in this system, and both are developer
errors rather than environmental faults:

  - Identifier not found: the derived identifier has no entry in the host
    registry, resource loader, or scene graph at call time (a registration was
    forgotten, or an override does not match what was registered).
  - Type mismatch: an entry was found, but the concrete runtime type of the
    produced object is not the statically expected type (two types collided on
    an identifier, or a template's root class changed without updating the
    override).

A third category, invalid resource, covers malformed template documents
surfaced by the real backends; it is still a configuration mistake and is
treated the same way at the facade boundary.

Host implementations return these as ordinary error values. The generic
facades in the root package convert them into a panic at the point of
retrieval, because a retrieval failure can only come from a static setup bug
that retrying cannot fix. Tests observe the panic value with recover and match
it with errors.Is:

	defer func() {
	    if err, ok := recover().(error); ok && errors.IsTypeMismatch(err) {
	        // expected
	    }
	}()
*/
package errors
