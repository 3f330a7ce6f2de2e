/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package yamlfs serves templates and scene graphs from YAML files in an
// fs.FS. A resource or scene graph named "ProfileView" is read from
// "ProfileView.yaml" relative to the root of the tree; use fs.Sub to keep
// the two namespaces apart when they share a directory layout.
package yamlfs

import (
	"io/fs"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
	"github.com/JayachandraA/Reusable/host/template"
)

// Loader implements host.ResourceLoader and host.SceneGraphLoader over an
// fs.FS of YAML documents.
type Loader struct {
	fsys fs.FS
}

// New creates a Loader reading from the given tree.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name+".yaml")
	if err != nil {
		return nil, errors.NewNotFoundError("resource loader", name)
	}
	return data, nil
}

// Load reads, parses, and materializes the named template.
func (l *Loader) Load(name string, owner any) (any, []any, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, nil, err
	}
	doc, err := template.Parse(data)
	if err != nil {
		return nil, nil, errors.NewInvalidResourceError(name, err.Error())
	}
	return template.Build(doc, owner)
}

// LoadSceneGraph reads and parses the named scene-graph document.
func (l *Loader) LoadSceneGraph(name string) (host.SceneGraph, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	doc, err := template.ParseSceneGraph(data)
	if err != nil {
		return nil, errors.NewInvalidResourceError(name, err.Error())
	}
	return template.NewGraph(doc), nil
}
