// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to drive the debugui inspection windows from an Ebiten game loop.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewWindow creates the backend together with an Ebiten window sized to fit
// the inspection windows. The imgui ini file is disabled, so window layout
// is not persisted between runs.
func NewWindow(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}
