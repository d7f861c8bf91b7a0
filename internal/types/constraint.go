package types

import "strings"

// Constraint is a predicate over version strings. Implementations are
// read-only; Flatten exposes the ordered simple parts so callers never
// resort to type inspection.
type Constraint interface {
	String() string
	Flatten() []SimpleConstraint
}

// SimpleConstraint is a single operator plus version. A bare version
// reference carries ConstraintOpNone.
type SimpleConstraint struct {
	Op      ConstraintOp
	Version string
}

func (c SimpleConstraint) String() string {
	if c.Op == ConstraintOpNone {
		return c.Version
	}
	return string(c.Op) + c.Version
}

func (c SimpleConstraint) Flatten() []SimpleConstraint {
	return []SimpleConstraint{c}
}

// MultiConstraint is an ordered conjunction of constraints.
type MultiConstraint struct {
	Parts []Constraint
}

func (c MultiConstraint) String() string {
	parts := make([]string, 0, len(c.Parts))
	for _, part := range c.Parts {
		parts = append(parts, part.String())
	}
	return strings.Join(parts, ",")
}

func (c MultiConstraint) Flatten() []SimpleConstraint {
	var out []SimpleConstraint
	for _, part := range c.Parts {
		out = append(out, part.Flatten()...)
	}
	return out
}
