package ecss

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/kamstrup/intmap"
)

// Registry coordinates the scene graph: it registers entities, attaches
// components, records systems and cameras, and drives traversal. Entities
// own their components; the registry keeps only non-owning lookups over
// the tree, so the tree is the single source of truth. One long-lived
// Registry value is owned by the caller; there is no package-level
// instance. All operations are synchronous and single-threaded.
type Registry struct {
	entities []*Entity
	systems  []System
	byID     *intmap.Map[uint64, *Entity]
	root     *Entity
	nextID   uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: intmap.New[uint64, *Entity](64),
	}
}

// CreateEntity registers e, assigns its id, and returns it. The entity
// whose name case-insensitively equals "root" becomes the registry root.
// Registering an instance twice fails with ErrDuplicateRegistration.
func (r *Registry) CreateEntity(e *Entity) (*Entity, error) {
	if e == nil {
		panic("cannot register a nil entity")
	}
	if e.id != 0 {
		return nil, &DuplicateRegistrationError{Name: e.name, ID: e.id}
	}

	r.nextID++
	e.setID(r.nextID)
	r.entities = append(r.entities, e)
	r.byID.Put(e.id, e)

	if strings.EqualFold(e.name, "root") {
		r.root = e
	}
	return e, nil
}

// CreateSystem records sys in registration order and returns it.
// Registering the same instance again records it again; no duplicate
// check is performed.
func (r *Registry) CreateSystem(sys System) System {
	if sys == nil {
		panic("cannot register a nil system")
	}
	r.systems = append(r.systems, sys)
	return sys
}

// AddComponent attaches comp to e and returns it. If e already carries a
// component of the same kind, comp replaces it in place and the old
// instance is detached, dropping out of the registry's collections.
// e must already be registered.
func (r *Registry) AddComponent(e *Entity, comp Component) (Component, error) {
	if comp == nil {
		panic("cannot attach a nil component")
	}
	if !r.registered(e) {
		return nil, unknownEntity(e)
	}

	replaced, err := e.attach(comp)
	if err != nil {
		return nil, err
	}
	if replaced != nil {
		replaced.setID(0)
	}

	r.nextID++
	comp.setID(r.nextID)
	return comp, nil
}

// AddEntityChild links child as the last child of parent, unless that
// linkage already exists. Both entities must be registered. Linking fails
// with ErrInvalidHierarchy when it would close a cycle or when child is
// parented elsewhere; re-parenting goes through RemoveEntity (or
// Entity.Remove) first.
func (r *Registry) AddEntityChild(parent, child *Entity) error {
	if !r.registered(parent) {
		return unknownEntity(parent)
	}
	if !r.registered(child) {
		return unknownEntity(child)
	}
	return parent.Add(child)
}

// RemoveEntity detaches e from its parent and unregisters it together with
// its attached components. The subtree below e stays linked beneath it and
// its entities stay registered; detached subtrees are not collected.
func (r *Registry) RemoveEntity(e *Entity) error {
	if !r.registered(e) {
		return unknownEntity(e)
	}

	if p := e.Parent(); p != nil {
		p.Remove(e)
	}
	if r.root == e {
		r.root = nil
	}

	r.byID.Del(e.id)
	if i := slices.Index(r.entities, e); i >= 0 {
		r.entities = slices.Delete(r.entities, i, i+1)
	}
	e.setID(0)
	return nil
}

// CreateIterator returns a depth-first pre-order sequence over the subtree
// rooted at e.
func (r *Registry) CreateIterator(e *Entity) iter.Seq[SceneNode] {
	return PreOrder(e)
}

// TraverseVisit walks the subtree rooted at root in pre-order and lets
// every attached component accept sys, components in attachment order.
// It returns the number of component visits dispatched. A nil root visits
// nothing.
func (r *Registry) TraverseVisit(sys System, root *Entity) int {
	visited := 0
	for n := range PreOrder(root) {
		if c, ok := n.(Component); ok {
			c.Accept(sys)
			visited++
		}
	}
	return visited
}

// Entities returns the registered entities in registration order.
func (r *Registry) Entities() []*Entity {
	return slices.Clone(r.entities)
}

// Components returns the components attached to registered entities,
// grouped by owning entity in registration order, attachment order within.
func (r *Registry) Components() []Component {
	var comps []Component
	for _, e := range r.entities {
		comps = append(comps, e.components...)
	}
	return comps
}

// Systems returns the registered systems in registration order.
func (r *Registry) Systems() []System {
	return slices.Clone(r.systems)
}

// Cameras returns the cameras attached to registered entities.
func (r *Registry) Cameras() []*Camera {
	var cams []*Camera
	for _, e := range r.entities {
		for _, c := range e.components {
			if cam, ok := c.(*Camera); ok {
				cams = append(cams, cam)
			}
		}
	}
	return cams
}

// Root returns the root entity, or nil if none is registered.
func (r *Registry) Root() *Entity {
	return r.root
}

// EntityByID returns the registered entity with the given id.
func (r *Registry) EntityByID(id uint64) (*Entity, bool) {
	return r.byID.Get(id)
}

// Dump writes the registry inventory: entities with their parent, child
// and component counts, then components, systems, and cameras.
func (r *Registry) Dump(w io.Writer) {
	fmt.Fprintf(w, "entities (%d):\n", len(r.entities))
	for _, e := range r.entities {
		parent := "-"
		if e.parent != nil {
			parent = e.parent.name
		}
		fmt.Fprintf(w, "  [%d] %s parent=%s children=%d components=%d\n",
			e.id, e.name, parent, len(e.children), len(e.components))
	}

	comps := r.Components()
	fmt.Fprintf(w, "components (%d):\n", len(comps))
	for _, c := range comps {
		fmt.Fprintf(w, "  [%d] %s %s owner=%s\n", c.ID(), c.Name(), c.Kind(), c.Parent().Name())
	}

	fmt.Fprintf(w, "systems (%d):\n", len(r.systems))
	for _, sys := range r.systems {
		fmt.Fprintf(w, "  %T\n", sys)
	}

	cams := r.Cameras()
	fmt.Fprintf(w, "cameras (%d):\n", len(cams))
	for _, cam := range cams {
		fmt.Fprintf(w, "  [%d] %s owner=%s\n", cam.ID(), cam.Name(), cam.Parent().Name())
	}

	if r.root != nil {
		fmt.Fprintf(w, "root: %s\n", r.root.name)
	} else {
		fmt.Fprintln(w, "root: -")
	}
}

// registered reports whether e carries an id this registry assigned.
func (r *Registry) registered(e *Entity) bool {
	if e == nil || e.id == 0 {
		return false
	}
	have, ok := r.byID.Get(e.id)
	return ok && have == e
}

func unknownEntity(e *Entity) *UnknownEntityError {
	if e == nil {
		return &UnknownEntityError{}
	}
	return &UnknownEntityError{Name: e.name, ID: e.id}
}
