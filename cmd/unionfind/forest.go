package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FrenchMajesty/unionfind/utils/disjoint_set"
)

// pairSeparator splits the two operands of a --union value.
const pairSeparator = ":"

var (
	defaultElements = []string{"A", "B", "C", "D", "E", "F", "G"}
	defaultUnions   = []string{"A:B", "B:C", "C:B", "D:E", "F:G"}
)

// buildForest creates one node per element and applies each union pair in
// order.
func buildForest(elements, unions []string) ([]disjoint_set.Node[string], error) {
	set := disjoint_set.MakeSet(elements)

	for _, pair := range unions {
		left, right, ok := strings.Cut(pair, pairSeparator)
		if !ok {
			return nil, fmt.Errorf("invalid union %q: expected a%sb", pair, pairSeparator)
		}
		a, err := resolveOperand(set, left)
		if err != nil {
			return nil, fmt.Errorf("invalid union %q: %w", pair, err)
		}
		b, err := resolveOperand(set, right)
		if err != nil {
			return nil, fmt.Errorf("invalid union %q: %w", pair, err)
		}
		if err := disjoint_set.Union(a, b); err != nil {
			return nil, fmt.Errorf("failed to union %q: %w", pair, err)
		}
	}

	return set, nil
}

// resolveOperand finds the node named by operand: "#i" selects the i-th
// element, anything else the first element with that value.
func resolveOperand(set []disjoint_set.Node[string], operand string) (disjoint_set.Node[string], error) {
	operand = strings.TrimSpace(operand)

	if idx, ok := strings.CutPrefix(operand, "#"); ok {
		i, err := strconv.Atoi(idx)
		if err != nil {
			return disjoint_set.Node[string]{}, fmt.Errorf("invalid index %q: %w", operand, err)
		}
		if i < 0 || i >= len(set) {
			return disjoint_set.Node[string]{}, fmt.Errorf("index %d out of range [0, %d)", i, len(set))
		}
		return set[i], nil
	}

	for _, n := range set {
		if n.Value() == operand {
			return n, nil
		}
	}
	return disjoint_set.Node[string]{}, fmt.Errorf("unknown element %q", operand)
}

// formatGroups lists every set as "root: member member ...", ordered by the
// first member's position.
func formatGroups(set []disjoint_set.Node[string]) string {
	var order []disjoint_set.Node[string]
	members := make(map[disjoint_set.Node[string]][]string)
	for _, n := range set {
		root := disjoint_set.Find(n)
		if _, seen := members[root]; !seen {
			order = append(order, root)
		}
		members[root] = append(members[root], n.Value())
	}

	var sb strings.Builder
	for _, root := range order {
		fmt.Fprintf(&sb, "%s: %s\n", root.Value(), strings.Join(members[root], " "))
	}
	return sb.String()
}
