/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"testing"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
)

type fakeCell struct {
	configured bool
}

func TestRegistry(t *testing.T) {
	t.Run("FactoryEntriesProduceFreshObjects", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register("Cell", func() any { return &fakeCell{} }); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		a, err := r.Dequeue("Cell", host.Location{})
		if err != nil {
			t.Fatalf("Failed to dequeue: %v", err)
		}
		b, err := r.Dequeue("Cell", host.Location{Item: 1})
		if err != nil {
			t.Fatalf("Failed to dequeue: %v", err)
		}
		if a == b {
			t.Fatal("Expected distinct instances per dequeue")
		}
		if r.DequeueCount("Cell") != 2 {
			t.Fatalf("Expected 2 dequeues, got %d", r.DequeueCount("Cell"))
		}
	})

	t.Run("UnknownIdentifierReturnsNotFound", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.Dequeue("Nope", host.Location{}); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})

	t.Run("ResourceEntriesGoThroughTheLoader", func(t *testing.T) {
		loader := NewResourceLoader().WithRoot("CellTemplate", func() any { return &fakeCell{} })
		r := NewRegistry().WithResourceLoader(loader)

		if err := r.RegisterResource("Cell", "CellTemplate"); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		obj, err := r.Dequeue("Cell", host.Location{})
		if err != nil {
			t.Fatalf("Failed to dequeue: %v", err)
		}
		if _, ok := obj.(*fakeCell); !ok {
			t.Fatalf("Expected *fakeCell, got %T", obj)
		}
	})

	t.Run("ResourceEntryWithoutLoaderReturnsNotFound", func(t *testing.T) {
		r := NewRegistry()
		if err := r.RegisterResource("Cell", "CellTemplate"); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if _, err := r.Dequeue("Cell", host.Location{}); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})

	t.Run("ReRegistrationReplacesByDefault", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register("Cell", func() any { return "old" }); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := r.Register("Cell", func() any { return "new" }); err != nil {
			t.Fatalf("Re-registration should succeed by default: %v", err)
		}
		obj, err := r.Dequeue("Cell", host.Location{})
		if err != nil {
			t.Fatalf("Failed to dequeue: %v", err)
		}
		if obj != "new" {
			t.Fatalf("Expected replacement entry, got %v", obj)
		}
	})

	t.Run("StrictModeRejectsDuplicates", func(t *testing.T) {
		r := NewRegistry().WithStrictIdentifiers()
		if err := r.Register("Cell", func() any { return nil }); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := r.RegisterResource("Cell", "CellTemplate"); !errors.IsAlreadyRegistered(err) {
			t.Fatalf("Expected duplicate registration error, got %v", err)
		}
	})
}

func TestResourceLoader(t *testing.T) {
	t.Run("ProducerReceivesOwner", func(t *testing.T) {
		loader := NewResourceLoader().
			WithResource("Panel", func(owner any) (any, []any) {
				if c, ok := owner.(*fakeCell); ok {
					c.configured = true
				}
				return nil, []any{"a", "b"}
			})

		owner := &fakeCell{}
		_, topLevel, err := loader.Load("Panel", owner)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if !owner.configured {
			t.Fatal("Owner was not passed to the producer")
		}
		if len(topLevel) != 2 {
			t.Fatalf("Expected 2 top-level objects, got %d", len(topLevel))
		}
	})

	t.Run("MissingResourceReturnsNotFound", func(t *testing.T) {
		loader := NewResourceLoader()
		if _, _, err := loader.Load("Nope", nil); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})
}

func TestSceneGraph(t *testing.T) {
	t.Run("InitialScene", func(t *testing.T) {
		g := NewSceneGraph("Main").WithInitialScene("Home", func() any { return "home" })
		obj, err := g.InstantiateInitial()
		if err != nil {
			t.Fatalf("Failed to instantiate: %v", err)
		}
		if obj != "home" {
			t.Fatalf("Expected the initial scene, got %v", obj)
		}
	})

	t.Run("NoInitialSceneReturnsNotFound", func(t *testing.T) {
		g := NewSceneGraph("Main").WithScene("Home", func() any { return "home" })
		if _, err := g.InstantiateInitial(); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})

	t.Run("UnknownSceneReturnsNotFound", func(t *testing.T) {
		g := NewSceneGraph("Main")
		if _, err := g.Instantiate("Nope"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})

	t.Run("LoaderResolvesGraphsByName", func(t *testing.T) {
		g := NewSceneGraph("Main")
		loader := NewSceneGraphLoader().WithSceneGraph("Main", g)

		got, err := loader.LoadSceneGraph("Main")
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if got != host.SceneGraph(g) {
			t.Fatal("Loader returned a different graph")
		}
		if _, err := loader.LoadSceneGraph("Other"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not-found error, got %v", err)
		}
	})
}
