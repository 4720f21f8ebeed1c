package ecss_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

type gravitySystem struct {
	ecss.NoopSystem
}

func (gravitySystem) Apply(t *ecss.Transform) {
	local := t.Local()
	local[13] -= 0.5
	t.Update(ecss.WithLocal(local))
}

// ExampleSystem demonstrates implementing a custom visitor. A system embeds
// NoopSystem and overrides only the hooks for the component kinds it cares
// about; every pass dispatches each visited component to its matching hook.
func ExampleSystem() {
	reg := ecss.NewRegistry()
	root, _ := reg.CreateEntity(ecss.NewEntity("root"))
	apple, _ := reg.CreateEntity(ecss.NewEntity("apple"))
	reg.AddEntityChild(root, apple)

	trs := ecss.NewTransform("apple-trs",
		ecss.WithLocal(mgl32.Translate3D(0, 10, 0)))
	reg.AddComponent(apple, trs)

	reg.TraverseVisit(gravitySystem{}, reg.Root())
	reg.TraverseVisit(gravitySystem{}, reg.Root())

	fmt.Printf("apple height: %.1f\n", trs.Local()[13])

	// Output:
	// apple height: 9.0
}

type meshCounter struct {
	ecss.NoopSystem
	count int
}

func (s *meshCounter) ApplyMesh(*ecss.RenderMesh) { s.count++ }

// ExampleNoopSystem shows the embeddable no-op base at work: kinds without
// an overridden hook dispatch harmlessly, so a single-purpose visitor stays
// a few lines long.
func ExampleNoopSystem() {
	reg := ecss.NewRegistry()
	root, _ := reg.CreateEntity(ecss.NewEntity("root"))
	reg.AddComponent(root, ecss.NewTransform("root-trs"))
	reg.AddComponent(root, ecss.NewCamera("root-cam"))
	reg.AddComponent(root, ecss.NewRenderMesh("root-mesh"))

	counter := &meshCounter{}
	visited := reg.TraverseVisit(counter, reg.Root())

	fmt.Printf("components visited: %d, meshes handled: %d\n", visited, counter.count)

	// Output:
	// components visited: 3, meshes handled: 1
}
