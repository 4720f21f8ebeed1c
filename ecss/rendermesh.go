package ecss

// RenderMesh marks an entity as drawable. It holds no transform state of
// its own; the draw hook reads whatever it needs from the sibling
// components of the owning entity.
type RenderMesh struct {
	leaf
	draw func(*RenderMesh)
}

// NewRenderMesh returns a RenderMesh with opts applied. Without a
// WithDrawFunc option the draw hook is a no-op.
func NewRenderMesh(name string, opts ...Option) *RenderMesh {
	m := &RenderMesh{leaf: leaf{node{name: name}}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Kind returns KindMesh.
func (m *RenderMesh) Kind() Kind { return KindMesh }

// Draw invokes the draw hook, if one is set.
func (m *RenderMesh) Draw() {
	if m.draw != nil {
		m.draw(m)
	}
}

// Accept dispatches to the mesh operation of s.
func (m *RenderMesh) Accept(s System) {
	s.ApplyMesh(m)
}

// Update applies the recognized options (WithDrawFunc), then triggers the
// draw side effect.
func (m *RenderMesh) Update(opts ...Option) {
	for _, opt := range opts {
		opt(m)
	}
	m.Draw()
}
