/*
Package reusable removes stringly-typed identifiers and manual casting from the
reuse machinery of a host UI framework: reusable list/grid cells dequeued from a
registry, views loaded from named templates, and screen controllers instantiated
from pre-built scene graphs.

A participating type gets a reuse identifier derived from its own declared name.
Registration installs the type under that identifier; retrieval recomputes the
identifier from the expected type at the call site and returns an instance that
is guaranteed to be of that type. A lookup that finds nothing, or finds an
object of the wrong concrete type, is a setup bug and aborts immediately with a
diagnostic naming the identifier and the expected type.

Key Features:
  - Identifier derivation from the type itself, with a per-type override hook
  - Type-safe register/dequeue over any host registry, using Go generics
  - Template-backed instantiation (self-rooted or owner-composed)
  - Scene-graph instantiation by initial scene or per-scene identifier
  - In-memory, file-backed (YAML), and DynamoDB-backed host implementations

Basic Usage:

	// Register a cell type with the host registry
	r := memory.NewRegistry()
	reusable.Register[TitleCell](r)

	// Dequeue it later; the call site's type parameter picks the identifier
	cell := reusable.Dequeue[TitleCell](r, host.Location{Section: 0, Item: 3})
	cell.Title = "hello"

For more information, see the documentation at https://github.com/JayachandraA/Reusable
*/
package reusable
