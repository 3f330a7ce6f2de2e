/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package template

import (
	"fmt"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
	"github.com/JayachandraA/Reusable/registry"
)

// Build materializes the document's object graph through the class registry.
//
// The first top-level object is returned as root. When owner is non-nil it
// becomes the wiring target: every ID-carrying object in the graph is offered
// to it via host.OutletConnector. Attribute application order is registered
// per-type defaults first, then the node's own attributes.
func Build(doc *Document, owner any) (root any, topLevel []any, err error) {
	if len(doc.Objects) == 0 {
		return nil, nil, errors.NewInvalidResourceError(doc.Name, "no top-level objects")
	}

	topLevel = make([]any, 0, len(doc.Objects))
	for _, n := range doc.Objects {
		obj, err := buildNode(doc.Name, n, owner)
		if err != nil {
			return nil, nil, err
		}
		topLevel = append(topLevel, obj)
	}
	return topLevel[0], topLevel, nil
}

func buildNode(docName string, n *Node, owner any) (any, error) {
	factory, err := registry.ClassFactory(n.Class)
	if err != nil {
		return nil, errors.NewInvalidResourceError(docName, err.Error())
	}
	obj := factory()

	if recv, ok := obj.(host.AttributeReceiver); ok {
		if defaults, ok := registry.DefaultsFor(obj); ok {
			for k, v := range defaults {
				recv.SetAttribute(k, v)
			}
		}
		for k, v := range n.Attributes {
			recv.SetAttribute(k, v)
		}
	}

	if n.ID != "" {
		if conn, ok := owner.(host.OutletConnector); ok {
			conn.ConnectOutlet(n.ID, obj)
		}
	}

	if len(n.Children) > 0 {
		container, ok := obj.(host.Container)
		if !ok {
			reason := fmt.Sprintf("class %q has children but cannot contain them", n.Class)
			return nil, errors.NewInvalidResourceError(docName, reason)
		}
		for _, c := range n.Children {
			child, err := buildNode(docName, c, owner)
			if err != nil {
				return nil, err
			}
			container.AddChild(child)
		}
	}

	return obj, nil
}

// Graph adapts a scene-graph document to host.SceneGraph. Scenes are
// materialized on demand; the graph itself holds no instances.
type Graph struct {
	doc *SceneGraphDocument
}

// NewGraph wraps a parsed scene-graph document.
func NewGraph(doc *SceneGraphDocument) *Graph {
	return &Graph{doc: doc}
}

// InstantiateInitial materializes the scene marked initial.
func (g *Graph) InstantiateInitial() (any, error) {
	if g.doc.InitialScene == "" {
		return nil, errors.NewNotFoundError(fmt.Sprintf("scene graph %q", g.doc.Name), "initial scene")
	}
	return g.Instantiate(g.doc.InitialScene)
}

// Instantiate materializes the scene with the given identifier.
func (g *Graph) Instantiate(sceneID string) (any, error) {
	root, ok := g.doc.Scenes[sceneID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("scene graph %q", g.doc.Name), sceneID)
	}
	return buildNode(g.doc.Name, root, nil)
}
