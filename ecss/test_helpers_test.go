package ecss_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

// recordingSystem logs every visit it receives, in dispatch order.
type recordingSystem struct {
	ecss.NoopSystem
	visits []string
}

func (s *recordingSystem) Apply(t *ecss.Transform) {
	s.visits = append(s.visits, "apply:"+t.Name())
}

func (s *recordingSystem) ApplyCamera(c *ecss.Camera) {
	s.visits = append(s.visits, "applyCamera:"+c.Name())
}

func (s *recordingSystem) ApplyCameraTransform(t *ecss.Transform) {
	s.visits = append(s.visits, "applyCameraTransform:"+t.Name())
}

func (s *recordingSystem) ApplyMesh(m *ecss.RenderMesh) {
	s.visits = append(s.visits, "applyMesh:"+m.Name())
}

// meshOnlySystem overrides a single operation and leaves the rest to
// NoopSystem.
type meshOnlySystem struct {
	ecss.NoopSystem
	meshes int
}

func (s *meshOnlySystem) ApplyMesh(*ecss.RenderMesh) {
	s.meshes++
}

func names(seq iter.Seq[ecss.SceneNode]) []string {
	var out []string
	for n := range seq {
		out = append(out, n.Name())
	}
	return out
}

func mustCreateEntity(t *testing.T, reg *ecss.Registry, name string) *ecss.Entity {
	t.Helper()
	e, err := reg.CreateEntity(ecss.NewEntity(name))
	require.NoError(t, err)
	return e
}

func mustLink(t *testing.T, reg *ecss.Registry, parent, child *ecss.Entity) {
	t.Helper()
	require.NoError(t, reg.AddEntityChild(parent, child))
}

func mustAttach(t *testing.T, reg *ecss.Registry, e *ecss.Entity, c ecss.Component) ecss.Component {
	t.Helper()
	got, err := reg.AddComponent(e, c)
	require.NoError(t, err)
	return got
}
