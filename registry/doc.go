/*
Package registry manages class registration for template materialization.

Templates refer to the objects they contain by class name. The class registry
maps those names to factories so a backend can turn a parsed document into a
live object graph:

	registry.RegisterClass("Label", func() any {
	    return &Label{}
	})

The defaults registry associates a Go type with attribute values applied to
every materialized instance of that type, before the template's own
attributes:

	registry.RegisterDefaults[Label](map[string]any{
	    "textColor": "primary",
	})

Both registries are populated during initialization, typically in init()
functions or through code generated by the templatecheck tool, and are safe
for concurrent reads afterwards.
*/
package registry
