package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func NewTraversalStats(historyFrames int) TraversalStats {
	return TraversalStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render shows registry counts, a frame-time graph, and the scheduler's
// per-system pass timings. scheduler may be nil.
func (ts *TraversalStats) Render(reg *ecss.Registry, scheduler *ecss.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Traversal Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ts.frameHistory[ts.frameIndex] = deltaTime * 1000.0
	ts.frameIndex = (ts.frameIndex + 1) % ts.historyFrames

	rootName := "-"
	if root := reg.Root(); root != nil {
		rootName = root.Name()
	}
	imgui.Text(fmt.Sprintf("Entities: %d", len(reg.Entities())))
	imgui.Text(fmt.Sprintf("Components: %d", len(reg.Components())))
	imgui.Text(fmt.Sprintf("Cameras: %d", len(reg.Cameras())))
	imgui.Text(fmt.Sprintf("Root: %s", rootName))

	var avgFrameTime float32
	for _, ft := range ts.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ts.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ts.frameHistory[0], int32(len(ts.frameHistory)))

	if scheduler == nil {
		imgui.End()
		return
	}

	stats := scheduler.GetStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Systems: %d  Passes: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Passes")
		imgui.TableSetupColumn("Nodes")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.NodesVisited))

			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())

			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
