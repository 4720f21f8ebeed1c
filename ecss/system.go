package ecss

// System is the visitor side of the scene graph: one operation per
// (component kind, behavior) pair. Components route themselves to the
// matching operations through Accept; a system receiving a kind it does
// not care about must treat the visit as a no-op, never a failure.
// Implementations embed NoopSystem and override only the operations they
// support.
type System interface {
	// Apply visits a Transform during the world-matrix pass.
	Apply(t *Transform)
	// ApplyCamera visits a Camera.
	ApplyCamera(c *Camera)
	// ApplyCameraTransform visits a Transform during the camera-relative pass.
	ApplyCameraTransform(t *Transform)
	// ApplyMesh visits a RenderMesh.
	ApplyMesh(m *RenderMesh)
}

// NoopSystem implements every System operation as a no-op. Embed it so a
// concrete system only spells out the operations it supports.
type NoopSystem struct{}

func (NoopSystem) Apply(*Transform)                {}
func (NoopSystem) ApplyCamera(*Camera)             {}
func (NoopSystem) ApplyCameraTransform(*Transform) {}
func (NoopSystem) ApplyMesh(*RenderMesh)           {}
