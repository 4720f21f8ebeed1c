package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func NewSceneBrowser() SceneBrowser {
	return SceneBrowser{}
}

// Render draws the registry's entity tree as collapsible nodes and returns
// the id of the selected entity (0 when nothing is selected).
func (sb *SceneBrowser) Render(reg *ecss.Registry) uint64 {
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return sb.selectedEntityID
	}

	imgui.InputTextWithHint("##filter", "Filter...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}
	imgui.Separator()

	if sb.filterText != "" {
		sb.renderFiltered(reg)
	} else {
		root := reg.Root()
		if root == nil {
			imgui.Text("No root entity")
		} else {
			sb.renderEntity(root)
		}

		// Detached subtrees stay registered; list their tops after the root.
		for _, e := range reg.Entities() {
			if e.Parent() == nil && e != root {
				sb.renderEntity(e)
			}
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Total: %d entities", len(reg.Entities())))

	imgui.End()
	return sb.selectedEntityID
}

func (sb *SceneBrowser) renderEntity(e *ecss.Entity) {
	flags := imgui.TreeNodeFlagsOpenOnArrow | imgui.TreeNodeFlagsSpanAvailWidth
	if e.ID() == sb.selectedEntityID {
		flags |= imgui.TreeNodeFlagsSelected
	}
	if e.NumChildren() == 0 && len(e.Components()) == 0 {
		flags |= imgui.TreeNodeFlagsLeaf
	}

	open := imgui.TreeNodeExStrV(fmt.Sprintf("%s##%d", e.Name(), e.ID()), flags)
	if imgui.IsItemClicked() {
		sb.selectedEntityID = e.ID()
	}
	if !open {
		return
	}

	for _, c := range e.Components() {
		imgui.BulletText(fmt.Sprintf("%s (%s)", c.Name(), c.Kind()))
	}
	for _, child := range e.Children() {
		sb.renderEntity(child)
	}

	imgui.TreePop()
}

// renderFiltered lists matching entities flat; tree structure is not useful
// while a name filter hides most of it.
func (sb *SceneBrowser) renderFiltered(reg *ecss.Registry) {
	needle := strings.ToLower(sb.filterText)
	matches := 0

	for _, e := range reg.Entities() {
		if !strings.Contains(strings.ToLower(e.Name()), needle) {
			continue
		}
		matches++

		isSelected := e.ID() == sb.selectedEntityID
		label := fmt.Sprintf("%s [%d]##f%d", e.Name(), e.ID(), e.ID())
		if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			sb.selectedEntityID = e.ID()
		}
	}

	if matches == 0 {
		imgui.Text("No entities match")
	}
}

func (sb *SceneBrowser) GetSelectedEntity() uint64 {
	return sb.selectedEntityID
}
