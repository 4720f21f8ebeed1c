package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func NewComponentInspector() ComponentInspector {
	return ComponentInspector{}
}

// Render shows the selected entity's components. Editable matrices are
// routed through the component's Update options, so an edit behaves exactly
// like a programmatic update.
func (ci *ComponentInspector) Render(reg *ecss.Registry, selectedEntityID uint64) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityID = selectedEntityID

	if ci.selectedEntityID == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity, ok := reg.EntityByID(ci.selectedEntityID)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d is no longer registered", ci.selectedEntityID))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s [%d]", entity.Name(), entity.ID()))
	parent := "-"
	if p := entity.Parent(); p != nil {
		parent = p.Name()
	}
	imgui.Text(fmt.Sprintf("Parent: %s  Children: %d", parent, entity.NumChildren()))
	imgui.Separator()

	components := entity.Components()
	if len(components) == 0 {
		imgui.Text("No components attached")
	}

	for _, c := range components {
		if imgui.TreeNodeStr(fmt.Sprintf("%s (%s)", c.Name(), c.Kind())) {
			ci.renderComponent(c)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(c ecss.Component) {
	switch comp := c.(type) {
	case *ecss.Transform:
		if local, edited := matrixEditor("local", comp.Local()); edited {
			comp.Update(ecss.WithLocal(local))
		}
		matrixRows("local2world", comp.LocalToWorld())
		matrixRows("local2cam", comp.LocalToCamera())

	case *ecss.Camera:
		if proj, edited := matrixEditor("projection", comp.Projection()); edited {
			comp.Update(ecss.WithProjection(proj))
		}
		if r2c, edited := matrixEditor("root2cam", comp.RootToCamera()); edited {
			comp.Update(ecss.WithRootToCamera(r2c))
		}

	case *ecss.RenderMesh:
		if imgui.Button(fmt.Sprintf("Invoke draw hook##%d", comp.ID())) {
			comp.Update()
		}
	}
}

// matrixEditor renders mat as an editable 4x4 grid (row-major display over
// the column-major backing array) and reports whether any cell changed.
func matrixEditor(label string, mat mgl32.Mat4) (mgl32.Mat4, bool) {
	imgui.Text(label)
	edited := false

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if col > 0 {
				imgui.SameLine()
			}
			v := mat[col*4+row]
			imgui.SetNextItemWidth(60)
			if imgui.InputFloat(fmt.Sprintf("##%s-%d-%d", label, row, col), &v) {
				mat[col*4+row] = v
				edited = true
			}
		}
	}

	return mat, edited
}

// matrixRows prints mat read-only, one row per line.
func matrixRows(label string, mat mgl32.Mat4) {
	imgui.Text(label)
	for row := 0; row < 4; row++ {
		imgui.Text(fmt.Sprintf("  %8.3f %8.3f %8.3f %8.3f",
			mat[row], mat[4+row], mat[8+row], mat[12+row]))
	}
}
