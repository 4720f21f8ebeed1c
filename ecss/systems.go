package ecss

import "github.com/go-gl/mathgl/mgl32"

// TransformSystem recomputes world matrices by composing each visited
// Transform's local matrix onto the world matrix of the nearest transformed
// ancestor, root-to-leaf. It relies on pre-order traversal: a node's
// ancestors must have been visited (and their world matrices written)
// before the node itself.
type TransformSystem struct {
	NoopSystem
}

// NewTransformSystem returns a TransformSystem.
func NewTransformSystem() *TransformSystem {
	return &TransformSystem{}
}

// Apply writes t's world matrix. A transform with no transformed ancestor
// is treated as the root: its world matrix is its own local matrix.
func (s *TransformSystem) Apply(t *Transform) {
	owner := t.Parent()
	if owner == nil {
		t.localToWorld = t.local
		return
	}
	if p, ok := ancestorTransform(owner); ok {
		t.localToWorld = p.localToWorld.Mul4(t.local)
		return
	}
	t.localToWorld = t.local
}

// ancestorTransform returns the Transform attached to the nearest strict
// ancestor of e that carries one.
func ancestorTransform(e *Entity) (*Transform, bool) {
	for a := e.Parent(); a != nil; a = a.Parent() {
		if t, ok := a.Component(KindTransform).(*Transform); ok {
			return t, true
		}
	}
	return nil, false
}

// CameraSystem rewrites camera-relative matrices. Visiting a Camera adopts
// it as the active camera; every Transform visited afterwards gets
// LocalToCamera = Projection * RootToCamera * LocalToWorld. Until a camera
// has been adopted, transform visits are no-ops, so a tree without a
// camera (or one visited before its camera) passes through unchanged.
type CameraSystem struct {
	NoopSystem
	active   *Camera
	viewProj mgl32.Mat4
}

// NewCameraSystem returns a CameraSystem with no active camera.
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// ApplyCamera adopts cam and caches its projection * root-to-camera product
// for the transform visits that follow.
func (s *CameraSystem) ApplyCamera(cam *Camera) {
	s.active = cam
	s.viewProj = cam.projection.Mul4(cam.rootToCamera)
}

// ApplyCameraTransform writes t's camera-relative matrix from the adopted
// camera and t's world matrix.
func (s *CameraSystem) ApplyCameraTransform(t *Transform) {
	if s.active == nil {
		return
	}
	t.localToCamera = s.viewProj.Mul4(t.localToWorld)
}

// Active returns the camera adopted by the last ApplyCamera visit, or nil.
func (s *CameraSystem) Active() *Camera {
	return s.active
}

// RenderSystem triggers the draw hook of every visited RenderMesh. It holds
// no state; draw submission itself lives behind the hook.
type RenderSystem struct {
	NoopSystem
}

// NewRenderSystem returns a RenderSystem.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// ApplyMesh invokes m's draw hook.
func (s *RenderSystem) ApplyMesh(m *RenderMesh) {
	m.Draw()
}
