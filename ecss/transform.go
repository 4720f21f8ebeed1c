package ecss

import "github.com/go-gl/mathgl/mgl32"

// Transform carries the matrix state of an entity: the local TRS matrix
// plus the world- and camera-relative matrices derived from it by the
// transform and camera passes. All three start as identity.
type Transform struct {
	leaf
	local         mgl32.Mat4
	localToWorld  mgl32.Mat4
	localToCamera mgl32.Mat4
}

// NewTransform returns a Transform with identity matrices and opts applied.
func NewTransform(name string, opts ...Option) *Transform {
	t := &Transform{
		leaf:          leaf{node{name: name}},
		local:         mgl32.Ident4(),
		localToWorld:  mgl32.Ident4(),
		localToCamera: mgl32.Ident4(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kind returns KindTransform.
func (t *Transform) Kind() Kind { return KindTransform }

// Local returns the local TRS matrix.
func (t *Transform) Local() mgl32.Mat4 { return t.local }

// LocalToWorld returns the world matrix written by the last transform pass.
func (t *Transform) LocalToWorld() mgl32.Mat4 { return t.localToWorld }

// LocalToCamera returns the camera-relative matrix written by the last camera pass.
func (t *Transform) LocalToCamera() mgl32.Mat4 { return t.localToCamera }

// Accept dispatches to the transform operations of s: the world-matrix
// update and the camera-relative update.
func (t *Transform) Accept(s System) {
	s.Apply(t)
	s.ApplyCameraTransform(t)
}

// Update applies the recognized options (WithLocal, WithLocalToWorld,
// WithLocalToCamera); all others are ignored.
func (t *Transform) Update(opts ...Option) {
	for _, opt := range opts {
		opt(t)
	}
}
