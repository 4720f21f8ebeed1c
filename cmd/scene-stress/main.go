package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	depth := flag.Int("depth", 6, "The depth of the generated entity tree.")
	fanout := flag.Int("fanout", 4, "The number of children under every non-leaf entity.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting scene graph stress test...")

	// 1. Build the registry and the entity tree
	reg := ecss.NewRegistry()
	root, err := reg.CreateEntity(ecss.NewEntity("root"))
	if err != nil {
		log.Fatalf("Failed to register root: %v", err)
	}
	if _, err := reg.AddComponent(root, ecss.NewTransform("root-trs")); err != nil {
		log.Fatalf("Failed to attach root transform: %v", err)
	}
	if _, err := reg.AddComponent(root, ecss.NewCamera("main-cam",
		ecss.WithProjection(mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 1000)),
		ecss.WithRootToCamera(mgl32.Translate3D(0, 0, -10)))); err != nil {
		log.Fatalf("Failed to attach camera: %v", err)
	}

	var drawCalls int64
	draw := func(*ecss.RenderMesh) { drawCalls++ }

	log.Printf("Growing a depth-%d fanout-%d entity tree...\n", *depth, *fanout)
	grow(reg, root, *depth, *fanout, draw)
	log.Printf("Scene ready: %d entities, %d components.\n", len(reg.Entities()), len(reg.Components()))

	// 2. Register the per-frame passes
	scheduler := ecss.NewScheduler(reg)
	scheduler.Register(ecss.NewTransformSystem())
	scheduler.Register(ecss.NewCameraSystem())
	scheduler.Register(ecss.NewRenderSystem())

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Depth:          *depth,
		Fanout:         *fanout,
		Entities:       len(reg.Entities()),
		Components:     len(reg.Components()),
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			if err := scheduler.Once(); err != nil {
				log.Fatalf("Frame failed: %v", err)
			}
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.DrawCalls = drawCalls
	report.FrameTime.Finalize()
	report.SystemStats = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// grow adds fanout children under parent and recurses until depth runs
// out. Every entity carries a transform; leaves also carry a mesh with the
// counting draw hook.
func grow(reg *ecss.Registry, parent *ecss.Entity, depth, fanout int, draw func(*ecss.RenderMesh)) {
	if depth == 0 {
		return
	}

	for i := 0; i < fanout; i++ {
		e, err := reg.CreateEntity(ecss.NewEntity(fmt.Sprintf("%s/%d", parent.Name(), i)))
		if err != nil {
			log.Fatalf("Failed to register entity: %v", err)
		}
		if err := reg.AddEntityChild(parent, e); err != nil {
			log.Fatalf("Failed to link entity: %v", err)
		}
		if _, err := reg.AddComponent(e, ecss.NewTransform(e.Name()+"-trs",
			ecss.WithLocal(mgl32.Translate3D(float32(i), 1, 0)))); err != nil {
			log.Fatalf("Failed to attach transform: %v", err)
		}
		if depth == 1 {
			if _, err := reg.AddComponent(e, ecss.NewRenderMesh(e.Name()+"-mesh",
				ecss.WithDrawFunc(draw))); err != nil {
				log.Fatalf("Failed to attach mesh: %v", err)
			}
		}

		grow(reg, e, depth-1, fanout, draw)
	}
}
