package ecss

import "slices"

// Entity is the composite node of the scene graph. It owns an ordered list
// of child entities (insertion order = traversal order) and at most one
// component per kind (attachment order preserved, same-kind attachment
// replaces in place).
type Entity struct {
	node
	children   []*Entity
	components []Component
}

// NewEntity returns an unregistered, unattached entity.
func NewEntity(name string) *Entity {
	return &Entity{node: node{name: name}}
}

// Kind returns KindEntity.
func (e *Entity) Kind() Kind { return KindEntity }

// NumChildren returns the number of child entities.
func (e *Entity) NumChildren() int { return len(e.children) }

// Child returns the i-th child entity, or ErrOutOfRange when i lies
// outside [0, NumChildren).
func (e *Entity) Child(i int) (SceneNode, error) {
	if i < 0 || i >= len(e.children) {
		return nil, &OutOfRangeError{Index: i, Len: len(e.children)}
	}
	return e.children[i], nil
}

// Children returns the child entities in insertion order.
func (e *Entity) Children() []*Entity {
	return slices.Clone(e.children)
}

// Components returns the attached components in attachment order.
func (e *Entity) Components() []Component {
	return slices.Clone(e.components)
}

// Component returns the attached component of the given kind, or nil.
func (e *Entity) Component(k Kind) Component {
	for _, c := range e.components {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// Add attaches child beneath e and sets its parent back-reference. A child
// entity becomes the last child; a component is attached with same-kind
// replacement. Linking an entity that would close a cycle, or one already
// parented elsewhere, fails with ErrInvalidHierarchy.
func (e *Entity) Add(child SceneNode) error {
	switch c := child.(type) {
	case *Entity:
		if c == nil {
			panic("cannot add a nil scene node")
		}
		return e.addChild(c)
	case Component:
		_, err := e.attach(c)
		return err
	default:
		panic("cannot add a nil scene node")
	}
}

// Remove detaches child from e if present; removing a node that is not
// attached is a no-op.
func (e *Entity) Remove(child SceneNode) {
	switch c := child.(type) {
	case *Entity:
		for i, have := range e.children {
			if have == c {
				e.children = slices.Delete(e.children, i, i+1)
				c.setParent(nil)
				return
			}
		}
	case Component:
		for i, have := range e.components {
			if have == c {
				e.components = slices.Delete(e.components, i, i+1)
				c.setParent(nil)
				return
			}
		}
	}
}

func (e *Entity) addChild(c *Entity) error {
	// Re-linking an existing child is a no-op.
	if c.parent == e {
		return nil
	}
	if c.parent != nil {
		return &InvalidHierarchyError{
			Op:     "add",
			Parent: e.name,
			Child:  c.name,
			Reason: "child is already parented; detach it first",
		}
	}
	// Linking c above itself would close a cycle: c must not be e or any
	// ancestor of e.
	for a := e; a != nil; a = a.parent {
		if a == c {
			return &InvalidHierarchyError{
				Op:     "add",
				Parent: e.name,
				Child:  c.name,
				Reason: "link would create a cycle",
			}
		}
	}
	c.setParent(e)
	e.children = append(e.children, c)
	return nil
}

// attach adds c to the component list, replacing the component of the same
// kind in place if one is attached. The replaced component (nil if none)
// is detached and returned.
func (e *Entity) attach(c Component) (Component, error) {
	if p := c.Parent(); p != nil && p != e {
		return nil, &InvalidHierarchyError{
			Op:     "attach",
			Parent: e.name,
			Child:  c.Name(),
			Reason: "component is already attached to another entity",
		}
	}
	for i, old := range e.components {
		if old.Kind() == c.Kind() {
			old.setParent(nil)
			e.components[i] = c
			c.setParent(e)
			if old == c {
				return nil, nil
			}
			return old, nil
		}
	}
	c.setParent(e)
	e.components = append(e.components, c)
	return nil, nil
}
