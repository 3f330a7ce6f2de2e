/*
Package processor provides build-time checking and code generation for
template directories.

The processor walks a directory of YAML documents, classifies each as a
template or a scene graph, and validates it structurally: missing names or
classes, templates with no top-level objects, duplicate node IDs, duplicate
resource names across files, scene graphs whose initial scene is not defined.
These are exactly the mistakes that would otherwise surface as a fatal
diagnostic at the first dequeue or instantiation, so catching them at build
time keeps the crash out of the run loop entirely.

Generated Code:
With an output path the processor also emits class registration code for
every class the documents mention:

	// Code generated by templatecheck. DO NOT EDIT.
	package views

	import "github.com/JayachandraA/Reusable/registry"

	func init() {
	    registry.RegisterClass("Label", func() any { return &Label{} })
	    registry.RegisterClass("StackView", func() any { return &StackView{} })
	}

This automation keeps the class registry and the template directory from
drifting apart.
*/
package processor
