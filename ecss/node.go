package ecss

// Kind identifies the concrete variant behind a SceneNode. The set is
// closed: entities plus the three component kinds.
type Kind uint8

//go:generate go tool stringer -type=Kind -trimprefix=Kind
const (
	KindEntity Kind = iota
	KindTransform
	KindCamera
	KindMesh
)

// SceneNode is the capability set shared by every element of the scene
// graph, entities and components alike. Parent is an explicit optional
// back-reference: nil means root or unattached, never ownership. The
// composite operations are no-ops or failures on leaf kinds.
//
// The implementing set is closed; only types in this package satisfy it.
type SceneNode interface {
	// ID returns the registry-assigned identifier, 0 while unregistered.
	ID() uint64
	// Name returns the caller-chosen node name.
	Name() string
	// Kind returns the concrete variant tag.
	Kind() Kind
	// Parent returns the owning entity, or nil for root/unattached nodes.
	Parent() *Entity
	// NumChildren returns the number of child entities, 0 for leaves.
	NumChildren() int
	// Child returns the i-th child entity, or ErrOutOfRange.
	Child(i int) (SceneNode, error)
	// Add attaches child beneath the node, or fails with ErrInvalidHierarchy.
	Add(child SceneNode) error
	// Remove detaches child if present, a no-op otherwise.
	Remove(child SceneNode)

	setID(id uint64)
	setParent(p *Entity)
}

// node carries the identity and back-reference fields shared by every
// SceneNode implementation.
type node struct {
	id     uint64
	name   string
	parent *Entity
}

func (n *node) ID() uint64      { return n.id }
func (n *node) Name() string    { return n.name }
func (n *node) Parent() *Entity { return n.parent }

func (n *node) setID(id uint64)     { n.id = id }
func (n *node) setParent(p *Entity) { n.parent = p }

// leaf implements the composite surface for nodes that never carry
// children: every component embeds it.
type leaf struct {
	node
}

func (l *leaf) NumChildren() int { return 0 }

func (l *leaf) Child(i int) (SceneNode, error) {
	return nil, &OutOfRangeError{Index: i, Len: 0}
}

func (l *leaf) Add(child SceneNode) error {
	if child == nil {
		panic("cannot add a nil scene node")
	}
	return &InvalidHierarchyError{
		Op:     "add",
		Parent: l.name,
		Child:  child.Name(),
		Reason: "component nodes carry no children",
	}
}

func (l *leaf) Remove(child SceneNode) {}
