// Package disjoint_set implements a disjoint-set (union-find) forest with
// path compression and union by size.
//
// All nodes created by one MakeSet call live in a single arena owned by a
// Forest. Parents are stored as indexes into that arena, so a node handle is
// a small comparable value and two handles name the same node exactly when
// they are equal.
//
// A Forest is not safe for concurrent use. Find compresses paths, so even
// lookups mutate the forest; callers sharing one across goroutines must
// serialize every call.
package disjoint_set

import (
	"github.com/google/uuid"
)

type node[T comparable] struct {
	payload T
	parent  int
	size    int // only meaningful while the node is a root
}

// Forest owns every node produced by one MakeSet call.
type Forest[T comparable] struct {
	id    uuid.UUID
	nodes []node[T]
	sets  int
}

// Node is a handle to one element of a Forest.
//
// The zero Node is detached: it belongs to no forest.
type Node[T comparable] struct {
	forest *Forest[T]
	index  int
}

// MakeSet creates a new forest holding one singleton set per element and
// returns the handles in input order. Duplicate elements become distinct
// nodes.
func MakeSet[T comparable](elements []T) []Node[T] {
	f := &Forest[T]{
		id:    uuid.New(),
		nodes: make([]node[T], len(elements)),
		sets:  len(elements),
	}

	handles := make([]Node[T], len(elements))
	for i, element := range elements {
		f.nodes[i] = node[T]{payload: element, parent: i, size: 1}
		handles[i] = Node[T]{forest: f, index: i}
	}
	return handles
}

// Find returns the representative of the set containing n. Every node on the
// path from n to the root is re-pointed directly at the root.
//
// Find panics if n is detached or if the forest's parent links are corrupt.
func Find[T comparable](n Node[T]) Node[T] {
	if n.forest == nil {
		panic(ErrDetachedNode)
	}
	return Node[T]{forest: n.forest, index: n.forest.find(n.index)}
}

// Union merges the sets containing a and b. The root of the smaller set is
// attached under the root of the larger one; on a tie b's root goes under
// a's root. Merging two nodes already in the same set does nothing.
//
// Union returns a *ForeignNodeError, leaving both forests untouched, when a
// and b do not belong to the same forest.
func Union[T comparable](a, b Node[T]) error {
	if err := sameForest(a, b); err != nil {
		return err
	}
	a.forest.union(a.index, b.index)
	return nil
}

// Connected reports whether a and b are in the same set.
func Connected[T comparable](a, b Node[T]) (bool, error) {
	if err := sameForest(a, b); err != nil {
		return false, err
	}
	return a.forest.find(a.index) == a.forest.find(b.index), nil
}

func sameForest[T comparable](a, b Node[T]) error {
	if a.forest == nil || b.forest == nil || a.forest != b.forest {
		return newForeignNodeError(a, b)
	}
	return nil
}

// find resolves x to its root in two passes: first locate the root, then
// point every node on the path at it.
func (f *Forest[T]) find(x int) int {
	root := x
	for steps := 0; ; steps++ {
		parent := f.parentOf(root)
		if parent == root {
			break
		}
		if steps >= len(f.nodes) {
			panic(&InvariantError{Forest: f.id, Index: x, Reason: "parent chain does not reach a root"})
		}
		root = parent
	}

	for x != root {
		next := f.nodes[x].parent
		if next == root {
			break
		}
		f.nodes[x].parent = root
		x = next
	}
	return root
}

func (f *Forest[T]) union(a, b int) {
	rootA := f.find(a)
	rootB := f.find(b)
	if rootA == rootB {
		return
	}

	if f.nodes[rootA].size < f.nodes[rootB].size {
		rootA, rootB = rootB, rootA
	}
	f.nodes[rootB].parent = rootA
	f.nodes[rootA].size += f.nodes[rootB].size
	f.sets--
}

// parentOf returns the parent index of x, panicking if the stored link does
// not resolve to a node of this forest.
func (f *Forest[T]) parentOf(x int) int {
	if x < 0 || x >= len(f.nodes) {
		panic(&InvariantError{Forest: f.id, Index: x, Reason: "index outside forest"})
	}
	parent := f.nodes[x].parent
	if parent < 0 || parent >= len(f.nodes) {
		panic(&InvariantError{Forest: f.id, Index: x, Reason: "parent index outside forest"})
	}
	return parent
}

// ID returns the identifier assigned to the forest at construction.
func (f *Forest[T]) ID() uuid.UUID {
	return f.id
}

// Len returns the number of nodes in the forest.
func (f *Forest[T]) Len() int {
	return len(f.nodes)
}

// CountSets returns the number of disjoint sets in the forest.
func (f *Forest[T]) CountSets() int {
	return f.sets
}

// Nodes returns a handle for every node, in construction order.
func (f *Forest[T]) Nodes() []Node[T] {
	handles := make([]Node[T], len(f.nodes))
	for i := range f.nodes {
		handles[i] = Node[T]{forest: f, index: i}
	}
	return handles
}

// Owns reports whether n was created by this forest.
func (f *Forest[T]) Owns(n Node[T]) bool {
	return n.forest == f
}

// Value returns the element stored in the node.
func (n Node[T]) Value() T {
	return n.forest.nodes[n.index].payload
}

// Index returns the node's position in the MakeSet input.
func (n Node[T]) Index() int {
	return n.index
}

// Forest returns the forest the node belongs to, or nil for a detached node.
func (n Node[T]) Forest() *Forest[T] {
	return n.forest
}

// IsRoot reports whether the node is currently the representative of its set.
func (n Node[T]) IsRoot() bool {
	return n.forest.parentOf(n.index) == n.index
}

// Parent returns the node's current parent without compressing anything.
// A root is its own parent.
func (n Node[T]) Parent() Node[T] {
	return Node[T]{forest: n.forest, index: n.forest.parentOf(n.index)}
}

// SetSize returns the number of nodes in the node's set.
func (n Node[T]) SetSize() int {
	return n.forest.nodes[n.forest.find(n.index)].size
}
