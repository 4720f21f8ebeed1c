package ecss

import "github.com/go-gl/mathgl/mgl32"

// Component is a typed data leaf attached to at most one Entity. Accept
// routes a visiting System to the operations matching the component's
// concrete kind (double dispatch); Update applies recognized options.
type Component interface {
	SceneNode

	// Accept invokes the System operations applicable to this kind.
	Accept(s System)
	// Update applies the recognized options for this kind. Options
	// addressed to another kind are ignored, not errors.
	Update(opts ...Option)
}

// Option mutates one recognized field of the component it is applied to.
// Applying an option to a component of another kind is a silent no-op.
type Option func(Component)

// WithLocal sets a Transform's local TRS matrix.
func WithLocal(m mgl32.Mat4) Option {
	return func(c Component) {
		if t, ok := c.(*Transform); ok {
			t.local = m
		}
	}
}

// WithLocalToWorld overwrites a Transform's world matrix.
func WithLocalToWorld(m mgl32.Mat4) Option {
	return func(c Component) {
		if t, ok := c.(*Transform); ok {
			t.localToWorld = m
		}
	}
}

// WithLocalToCamera overwrites a Transform's camera-relative matrix.
func WithLocalToCamera(m mgl32.Mat4) Option {
	return func(c Component) {
		if t, ok := c.(*Transform); ok {
			t.localToCamera = m
		}
	}
}

// WithProjection sets a Camera's projection matrix.
func WithProjection(m mgl32.Mat4) Option {
	return func(c Component) {
		if cam, ok := c.(*Camera); ok {
			cam.projection = m
		}
	}
}

// WithRootToCamera sets a Camera's root-to-camera matrix.
func WithRootToCamera(m mgl32.Mat4) Option {
	return func(c Component) {
		if cam, ok := c.(*Camera); ok {
			cam.rootToCamera = m
		}
	}
}

// WithDrawFunc sets a RenderMesh's draw hook.
func WithDrawFunc(fn func(*RenderMesh)) Option {
	return func(c Component) {
		if m, ok := c.(*RenderMesh); ok {
			m.draw = fn
		}
	}
}
