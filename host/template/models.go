/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package template

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node describes one object in a template's graph.
type Node struct {
	// Class is the registered class name used to construct the object.
	Class string `yaml:"class"`
	// ID optionally names the object for outlet connection.
	ID string `yaml:"id,omitempty"`
	// Attributes are applied to the object after construction.
	Attributes map[string]any `yaml:"attributes,omitempty"`
	// Children are materialized and attached to the object in order.
	Children []*Node `yaml:"children,omitempty"`
}

// Document is a named object-graph template. Its first top-level object is
// the template's root.
type Document struct {
	Name    string  `yaml:"name"`
	Objects []*Node `yaml:"objects"`
}

// SceneGraphDocument is a named collection of scene definitions keyed by
// scene identifier, with an optional initial scene.
type SceneGraphDocument struct {
	Name         string           `yaml:"name"`
	InitialScene string           `yaml:"initialScene,omitempty"`
	Scenes       map[string]*Node `yaml:"scenes"`
}

// Parse decodes a template document from YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse template document: %w", err)
	}
	return &doc, nil
}

// ParseSceneGraph decodes a scene-graph document from YAML.
func ParseSceneGraph(data []byte) (*SceneGraphDocument, error) {
	var doc SceneGraphDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene graph document: %w", err)
	}
	return &doc, nil
}

// Validate reports structural problems in the document: a missing name,
// missing classes, no top-level objects, or duplicate node IDs.
func (d *Document) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("template document has no name")
	}
	if len(d.Objects) == 0 {
		return fmt.Errorf("template %q has no top-level objects", d.Name)
	}
	seen := make(map[string]bool)
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n.Class == "" {
			return fmt.Errorf("template %q contains a node with no class", d.Name)
		}
		if n.ID != "" {
			if seen[n.ID] {
				return fmt.Errorf("template %q declares id %q more than once", d.Name, n.ID)
			}
			seen[n.ID] = true
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, n := range d.Objects {
		if err := walk(n); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports structural problems in the scene graph: a missing name,
// no scenes, a dangling initial-scene reference, or a scene without a root
// class.
func (d *SceneGraphDocument) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("scene graph document has no name")
	}
	if len(d.Scenes) == 0 {
		return fmt.Errorf("scene graph %q has no scenes", d.Name)
	}
	if d.InitialScene != "" {
		if _, ok := d.Scenes[d.InitialScene]; !ok {
			return fmt.Errorf("scene graph %q marks initial scene %q but does not define it", d.Name, d.InitialScene)
		}
	}
	for id, root := range d.Scenes {
		if root == nil || root.Class == "" {
			return fmt.Errorf("scene graph %q scene %q has no root class", d.Name, id)
		}
	}
	return nil
}
