/*
Package template defines the document model shared by the template-backed host
implementations, and the materializer that turns parsed documents into live
object graphs.

A template document is authored in YAML:

	name: ProfileView
	objects:
	  - class: StackView
	    children:
	      - class: Label
	        id: nameLabel
	        attributes:
	          text: "unnamed"
	      - class: ImageView
	        id: avatar

A scene-graph document names its scenes and may mark one initial:

	name: Main
	initialScene: HomeController
	scenes:
	  HomeController:
	    class: HomeController
	  DetailController:
	    class: DetailController

Build resolves each node's class through the class registry, applies
registered per-type defaults and then the node's own attributes, attaches
children, and connects ID-carrying objects to an owning OutletConnector when
the document is loaded as content.
*/
package template
