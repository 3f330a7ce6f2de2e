/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JayachandraA/Reusable/host/template"
)

var (
	dirFlag = flag.String("dir", ".", "Template directory to check")
	genFlag = flag.String("gen", "", "Write class registration code to this file")
	pkgFlag = flag.String("pkg", "views", "Package name for generated code")
)

// Report is the outcome of checking one template directory.
type Report struct {
	Templates   int
	SceneGraphs int
	Classes     []string
	Problems    []string
}

// OK reports whether the directory checked clean.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// classify decides whether a document is a scene graph or a template. A
// mapping with a "scenes" key is a scene graph; everything else is a
// template.
func classify(data []byte) (isSceneGraph bool, err error) {
	var probe struct {
		Scenes map[string]any `yaml:"scenes"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false, err
	}
	return probe.Scenes != nil, nil
}

// Check walks fsys and validates every .yaml document in it.
func Check(fsys fs.FS) (*Report, error) {
	report := &Report{}
	classes := make(map[string]bool)
	names := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".yaml") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		sceneGraph, err := classify(data)
		if err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", p, err))
			return nil
		}

		var name string
		if sceneGraph {
			doc, err := template.ParseSceneGraph(data)
			if err == nil {
				err = doc.Validate()
			}
			if err != nil {
				report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", p, err))
				return nil
			}
			report.SceneGraphs++
			name = doc.Name
			for _, root := range doc.Scenes {
				collectClasses(root, classes)
			}
		} else {
			doc, err := template.Parse(data)
			if err == nil {
				err = doc.Validate()
			}
			if err != nil {
				report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", p, err))
				return nil
			}
			report.Templates++
			name = doc.Name
			for _, n := range doc.Objects {
				collectClasses(n, classes)
			}
		}

		// The file name is the lookup key, so it must agree with the
		// document's own name.
		base := strings.TrimSuffix(path.Base(p), ".yaml")
		if base != name {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: file name %q does not match document name %q", p, base, name))
		}
		if prev, dup := names[name]; dup {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: resource name %q already used by %s", p, name, prev))
		} else {
			names[name] = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for c := range classes {
		report.Classes = append(report.Classes, c)
	}
	sort.Strings(report.Classes)
	return report, nil
}

func collectClasses(n *template.Node, classes map[string]bool) {
	if n == nil {
		return
	}
	classes[n.Class] = true
	for _, c := range n.Children {
		collectClasses(c, classes)
	}
}

// Generate renders class registration code for the given class names.
func Generate(pkg string, classes []string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by templatecheck. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/JayachandraA/Reusable/registry\"\n\n")
	fmt.Fprintf(&buf, "func init() {\n")
	for _, c := range classes {
		fmt.Fprintf(&buf, "\tregistry.RegisterClass(%q, func() any { return &%s{} })\n", c, c)
	}
	fmt.Fprintf(&buf, "}\n")
	return buf.Bytes()
}

// Main runs the processor against the flag-selected directory.
func Main() {
	report, err := Check(os.DirFS(*dirFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "templatecheck: %v\n", err)
		os.Exit(1)
	}

	for _, p := range report.Problems {
		fmt.Fprintf(os.Stderr, "templatecheck: %s\n", p)
	}
	fmt.Printf("Checked %d templates, %d scene graphs, %d classes\n",
		report.Templates, report.SceneGraphs, len(report.Classes))

	if !report.OK() {
		os.Exit(1)
	}

	if *genFlag != "" {
		code := Generate(*pkgFlag, report.Classes)
		if err := os.WriteFile(*genFlag, code, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "templatecheck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *genFlag)
	}
}
