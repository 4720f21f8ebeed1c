package ecss

// Commands is a buffer for deferred scene-graph mutations. Mutating the
// tree while a traversal pass is in flight has undefined ordering, so
// callers queue structural changes here and flush them against the
// registry once the pass is done.
type Commands struct {
	removes  []*Entity
	creates  []*Entity
	links    []linkCommand
	attaches []attachCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type linkCommand struct {
	parent *Entity
	child  *Entity
}

type attachCommand struct {
	entity    *Entity
	component Component
}

// RemoveEntity queues the removal of e.
func (c *Commands) RemoveEntity(e *Entity) {
	c.removes = append(c.removes, e)
}

// CreateEntity queues the registration of e.
func (c *Commands) CreateEntity(e *Entity) {
	c.creates = append(c.creates, e)
}

// AddEntityChild queues linking child under parent.
func (c *Commands) AddEntityChild(parent, child *Entity) {
	c.links = append(c.links, linkCommand{parent: parent, child: child})
}

// AddComponent queues attaching comp to e.
func (c *Commands) AddComponent(e *Entity, comp Component) {
	c.attaches = append(c.attaches, attachCommand{entity: e, component: comp})
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies the buffered mutations to reg, resetting the buffer state:
// removals first, then registrations, links, attachments, and deferred
// functions. Operations referencing an entity removed in the same flush
// are skipped. The buffer is always drained fully; the first error
// encountered is returned.
func (c *Commands) Flush(reg *Registry) error {
	var first error
	record := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}

	removedEntities := make(map[*Entity]bool)
	for _, e := range c.removes {
		record(reg.RemoveEntity(e))
		removedEntities[e] = true
	}

	for _, e := range c.creates {
		if !removedEntities[e] {
			_, err := reg.CreateEntity(e)
			record(err)
		}
	}

	for _, cmd := range c.links {
		if !removedEntities[cmd.parent] && !removedEntities[cmd.child] {
			record(reg.AddEntityChild(cmd.parent, cmd.child))
		}
	}

	for _, cmd := range c.attaches {
		if !removedEntities[cmd.entity] {
			_, err := reg.AddComponent(cmd.entity, cmd.component)
			record(err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.removes = c.removes[:0]
	c.creates = c.creates[:0]
	c.links = c.links[:0]
	c.attaches = c.attaches[:0]
	c.defers = c.defers[:0]
	return first
}
