package ecss_test

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

// ExampleScheduler demonstrates building a frame loop: each registered
// system runs a full visitation pass over the scene, in registration
// order, and per-system timings accumulate in the scheduler stats.
func ExampleScheduler() {
	reg := ecss.NewRegistry()
	root, _ := reg.CreateEntity(ecss.NewEntity("root"))
	moon, _ := reg.CreateEntity(ecss.NewEntity("moon"))
	reg.AddEntityChild(root, moon)

	reg.AddComponent(root, ecss.NewTransform("root-trs",
		ecss.WithLocal(mgl32.Translate3D(5, 0, 0))))
	moonTrs := ecss.NewTransform("moon-trs",
		ecss.WithLocal(mgl32.Translate3D(0, 2, 0)))
	reg.AddComponent(moon, moonTrs)

	scheduler := ecss.NewScheduler(reg)
	scheduler.Register(ecss.NewTransformSystem())
	scheduler.Register(ecss.NewCameraSystem())
	scheduler.Register(ecss.NewRenderSystem())

	if err := scheduler.Once(); err != nil {
		fmt.Println("frame failed:", err)
		return
	}

	world := moonTrs.LocalToWorld()
	fmt.Printf("moon sits at (%.0f, %.0f, %.0f)\n", world[12], world[13], world[14])

	stats := scheduler.GetStats()
	fmt.Printf("systems: %d, passes: %d\n", stats.SystemCount, stats.TotalExecutions)

	// Output:
	// moon sits at (5, 2, 0)
	// systems: 3, passes: 3
}

// ExampleScheduler_Run demonstrates running a continuous loop. Run blocks
// and executes a frame at a fixed interval until the context is cancelled,
// the typical pattern for a real-time simulation.
func ExampleScheduler_Run() {
	reg := ecss.NewRegistry()
	root, _ := reg.CreateEntity(ecss.NewEntity("root"))
	reg.AddComponent(root, ecss.NewTransform("trs"))

	scheduler := ecss.NewScheduler(reg)
	scheduler.Register(ecss.NewTransformSystem())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")

	// Output:
	// Scheduler stopped
}
