package ecss

import "iter"

// PreOrder returns a lazy, finite, depth-first pre-order sequence over the
// subtree rooted at root: each entity is yielded before its contents, its
// components follow in attachment order, then each child subtree in
// insertion order. Re-invoking the sequence restarts from root. Mutating
// the tree during an in-progress walk leaves the ordering undefined; that
// is the caller's responsibility, not defended against.
func PreOrder(root *Entity) iter.Seq[SceneNode] {
	return func(yield func(SceneNode) bool) {
		if root == nil {
			return
		}
		walk(root, yield)
	}
}

func walk(e *Entity, yield func(SceneNode) bool) bool {
	if !yield(e) {
		return false
	}
	for _, c := range e.components {
		if !yield(c) {
			return false
		}
	}
	for _, child := range e.children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}
