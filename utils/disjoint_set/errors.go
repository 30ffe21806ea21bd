package disjoint_set

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrForeignNode is matched by every *ForeignNodeError.
	ErrForeignNode = errors.New("nodes belong to different forests")

	// ErrDetachedNode is used when a zero Node reaches an operation.
	ErrDetachedNode = errors.New("node does not belong to any forest")
)

// ForeignNodeError reports an operation given two handles that were not
// created by the same MakeSet call.
type ForeignNodeError struct {
	Left  uuid.UUID // uuid.Nil for a detached node
	Right uuid.UUID
}

func newForeignNodeError[T comparable](a, b Node[T]) *ForeignNodeError {
	e := &ForeignNodeError{}
	if a.forest != nil {
		e.Left = a.forest.id
	}
	if b.forest != nil {
		e.Right = b.forest.id
	}
	return e
}

func (e *ForeignNodeError) Error() string {
	return fmt.Sprintf("%v: %s and %s", ErrForeignNode, forestName(e.Left), forestName(e.Right))
}

// Is makes errors.Is match ErrForeignNode, and ErrDetachedNode when either
// side is detached.
func (e *ForeignNodeError) Is(target error) bool {
	switch target {
	case ErrForeignNode:
		return true
	case ErrDetachedNode:
		return e.Left == uuid.Nil || e.Right == uuid.Nil
	}
	return false
}

func forestName(id uuid.UUID) string {
	if id == uuid.Nil {
		return "detached node"
	}
	return "forest " + id.String()
}

// InvariantError describes a corrupted forest. It is never returned; Find
// and Union panic with it because the forest can no longer be trusted.
type InvariantError struct {
	Forest uuid.UUID
	Index  int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("disjoint set invariant violated in forest %s at node %d: %s", e.Forest, e.Index, e.Reason)
}
