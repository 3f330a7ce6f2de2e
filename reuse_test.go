/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"strings"
	"testing"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
	"github.com/JayachandraA/Reusable/host/memory"
)

// Test types
type TitleCell struct {
	Title string
}

type AvatarCell struct {
	TemplateBacked
	Image any
}

// Qux maliciously reuses Foo's identifier to force a collision.
type Qux struct{}

func (Qux) ReuseIdentifier() string { return "Foo" }

// expectFatal runs fn and fails unless it panics with an error matching want
// whose message contains every string in naming (the diagnostic must name the
// identifier and the expected type).
func expectFatal(t *testing.T, want func(error) bool, fn func(), naming ...string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected a panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected an error panic value, got %T", r)
		}
		if !want(err) {
			t.Fatalf("Panic value has wrong kind: %v", err)
		}
		for _, s := range naming {
			if !strings.Contains(err.Error(), s) {
				t.Fatalf("Diagnostic %q does not name %q", err.Error(), s)
			}
		}
	}()
	fn()
}

func TestRegisterAndDequeue(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		r := memory.NewRegistry()
		if err := Register[TitleCell](r); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		cell := Dequeue[TitleCell](r, host.Location{Section: 0, Item: 3})
		if cell == nil {
			t.Fatal("Dequeued cell is nil")
		}
		cell.Title = "hello"

		if r.DequeueCount(Identifier[TitleCell]()) != 1 {
			t.Fatalf("Expected one dequeue of %q", Identifier[TitleCell]())
		}
	})

	t.Run("OverriddenIdentifierRoundTrip", func(t *testing.T) {
		r := memory.NewRegistry()
		if err := Register[Bar](r); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		if Dequeue[Bar](r, host.Location{}) == nil {
			t.Fatal("Dequeued instance is nil")
		}
		if r.DequeueCount("BarID") != 1 {
			t.Fatal("Dequeue did not use the overridden identifier")
		}
	})

	t.Run("TemplateBackedRegistersItsResource", func(t *testing.T) {
		loader := memory.NewResourceLoader().
			WithRoot("AvatarCell", func() any { return &AvatarCell{} })
		r := memory.NewRegistry().WithResourceLoader(loader)

		if err := Register[AvatarCell](r); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		cell := Dequeue[AvatarCell](r, host.Location{Section: 1, Item: 0})
		if cell == nil {
			t.Fatal("Dequeued cell is nil")
		}
	})

	t.Run("UnregisteredIdentifierIsFatal", func(t *testing.T) {
		r := memory.NewRegistry()
		expectFatal(t, errors.IsNotFound, func() {
			Dequeue[TitleCell](r, host.Location{})
		}, `"TitleCell"`, "*reusable.TitleCell")
	})

	t.Run("NotFoundDiagnosticNamesTheExpectedType", func(t *testing.T) {
		// Bar's identifier is overridden, so the identifier alone would not
		// reveal which type the call site expected.
		r := memory.NewRegistry()
		expectFatal(t, errors.IsNotFound, func() {
			Dequeue[Bar](r, host.Location{})
		}, `"BarID"`, "*reusable.Bar")
	})

	t.Run("CollidingIdentifierIsFatal", func(t *testing.T) {
		r := memory.NewRegistry()
		if err := Register[Foo](r); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Qux claims Foo's identifier, so the entry produces a *Foo where a
		// *Qux is expected. That must abort, never hand back a wrong type.
		expectFatal(t, errors.IsTypeMismatch, func() {
			Dequeue[Qux](r, host.Location{})
		})
	})

	t.Run("StrictRegistryRejectsDuplicate", func(t *testing.T) {
		r := memory.NewRegistry().WithStrictIdentifiers()
		if err := Register[TitleCell](r); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := Register[TitleCell](r); !errors.IsAlreadyRegistered(err) {
			t.Fatalf("Expected duplicate registration error, got %v", err)
		}
	})
}
