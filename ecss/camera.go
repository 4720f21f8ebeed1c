package ecss

import "github.com/go-gl/mathgl/mgl32"

// Camera carries the projection matrix and the root-to-camera matrix the
// camera pass composes into camera-relative transforms. Both start as
// identity.
type Camera struct {
	leaf
	projection   mgl32.Mat4
	rootToCamera mgl32.Mat4
}

// NewCamera returns a Camera with identity matrices and opts applied.
func NewCamera(name string, opts ...Option) *Camera {
	c := &Camera{
		leaf:         leaf{node{name: name}},
		projection:   mgl32.Ident4(),
		rootToCamera: mgl32.Ident4(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kind returns KindCamera.
func (c *Camera) Kind() Kind { return KindCamera }

// Projection returns the projection matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// RootToCamera returns the root-to-camera matrix.
func (c *Camera) RootToCamera() mgl32.Mat4 { return c.rootToCamera }

// Accept dispatches to the camera operation of s.
func (c *Camera) Accept(s System) {
	s.ApplyCamera(c)
}

// Update applies the recognized options (WithProjection, WithRootToCamera);
// all others are ignored.
func (c *Camera) Update(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
