// Package debugui provides immediate-mode inspection windows for a scene
// Registry using Dear ImGui. The windows read the registry's public query
// surface and route edits through component update options; they never
// reach into registry internals.
package debugui

import (
	"github.com/MichaelMorf/glGA-SDK/ecss"
)

// DebugUI bundles the inspection windows: the browser's selection feeds
// the inspector, and the stats window reads the scheduler timings.
type DebugUI struct {
	Browser   SceneBrowser
	Inspector ComponentInspector
	Stats     TraversalStats
}

// New creates a DebugUI with a default frame-history window.
func New() *DebugUI {
	return &DebugUI{
		Browser:   NewSceneBrowser(),
		Inspector: NewComponentInspector(),
		Stats:     NewTraversalStats(120),
	}
}

// Render draws all windows for the current ImGui frame. scheduler may be
// nil when no frame loop is running.
func (ui *DebugUI) Render(reg *ecss.Registry, scheduler *ecss.Scheduler, deltaTime float32) {
	selected := ui.Browser.Render(reg)
	ui.Inspector.Render(reg, selected)
	ui.Stats.Render(reg, scheduler, deltaTime)
}
