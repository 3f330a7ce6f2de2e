/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reusable

import (
	"testing"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host/memory"
)

// Test types
type HomeVC struct {
	Title string
}

// SecondaryVC shares the "Main" scene graph and is selected within it by its
// own identifier.
type SecondaryVC struct{}

func (SecondaryVC) SceneSource() string { return "Main" }

func TestInstantiateScene(t *testing.T) {
	t.Run("GraphNamedAfterTypeUsesInitialScene", func(t *testing.T) {
		graph := memory.NewSceneGraph("HomeVC").
			WithInitialScene("HomeVC", func() any { return &HomeVC{Title: "home"} })
		loader := memory.NewSceneGraphLoader().WithSceneGraph("HomeVC", graph)

		vc := InstantiateScene[HomeVC](loader)
		if vc.Title != "home" {
			t.Fatalf("Expected the initial scene's controller, got %+v", vc)
		}
	})

	t.Run("ExplicitSourceSelectsSceneByIdentifier", func(t *testing.T) {
		graph := memory.NewSceneGraph("Main").
			WithInitialScene("HomeVC", func() any { return &HomeVC{} }).
			WithScene("SecondaryVC", func() any { return &SecondaryVC{} })
		loader := memory.NewSceneGraphLoader().WithSceneGraph("Main", graph)

		if InstantiateScene[SecondaryVC](loader) == nil {
			t.Fatal("Instantiated controller is nil")
		}
	})

	t.Run("MissingGraphIsFatal", func(t *testing.T) {
		loader := memory.NewSceneGraphLoader()
		expectFatal(t, errors.IsNotFound, func() {
			InstantiateScene[HomeVC](loader)
		}, `"HomeVC"`, "*reusable.HomeVC")
	})

	t.Run("MissingSceneIdentifierIsFatal", func(t *testing.T) {
		graph := memory.NewSceneGraph("Main").
			WithInitialScene("HomeVC", func() any { return &HomeVC{} })
		loader := memory.NewSceneGraphLoader().WithSceneGraph("Main", graph)

		expectFatal(t, errors.IsNotFound, func() {
			InstantiateScene[SecondaryVC](loader)
		}, `"SecondaryVC"`, "*reusable.SecondaryVC")
	})

	t.Run("WrongSceneTypeIsFatal", func(t *testing.T) {
		graph := memory.NewSceneGraph("Main").
			WithScene("SecondaryVC", func() any { return &HomeVC{} })
		loader := memory.NewSceneGraphLoader().WithSceneGraph("Main", graph)

		expectFatal(t, errors.IsTypeMismatch, func() {
			InstantiateScene[SecondaryVC](loader)
		})
	})
}
