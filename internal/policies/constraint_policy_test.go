package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-lint/internal/types"
)

func link(target string, parts ...types.SimpleConstraint) types.Link {
	if len(parts) == 1 {
		return types.Link{Target: target, Constraint: parts[0]}
	}
	multi := types.MultiConstraint{}
	for _, part := range parts {
		multi.Parts = append(multi.Parts, part)
	}
	return types.Link{Target: target, Constraint: multi}
}

func TestAdviseNoUpperBound(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/gears",
		types.SimpleConstraint{Op: types.ConstraintOpGte, Version: "1.0"}))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "acme/gears")
	assert.Contains(t, warnings[0], "no upper bound")
}

func TestAdviseBoundedRange(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/gears",
		types.SimpleConstraint{Op: types.ConstraintOpGte, Version: "1.0"},
		types.SimpleConstraint{Op: types.ConstraintOpLt, Version: "2.0"}))
	assert.Empty(t, warnings)
}

func TestAdviseUpperBoundOnly(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/gears",
		types.SimpleConstraint{Op: types.ConstraintOpLt, Version: "2.0"}))
	assert.Empty(t, warnings)
}

func TestAdviseStar(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/springs",
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "*"}))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "discouraged")
}

func TestAdviseDevMaster(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/belts",
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "dev-master"}))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dev-master")
}

func TestAdviseStarShadowsMasterPerPart(t *testing.T) {
	// A part containing both markers only counts as a star part; the
	// dev-master substring check is an else-if.
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/belts",
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "dev-master.*"}))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "* constraint")
}

func TestAdviseCaseInsensitiveMaster(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/belts",
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "DEV-MASTER"}))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dev-master")
}

func TestAdviseAllThreeIndependent(t *testing.T) {
	policy := NewConstraintPolicy()
	warnings := policy.Advise(link("acme/gears",
		types.SimpleConstraint{Op: types.ConstraintOpGte, Version: "1.0"},
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "1.*"},
		types.SimpleConstraint{Op: types.ConstraintOpNone, Version: "dev-master"}))
	assert.Len(t, warnings, 3)
}

func TestAdviseNilConstraint(t *testing.T) {
	policy := NewConstraintPolicy()
	assert.Empty(t, policy.Advise(types.Link{Target: "acme/gears"}))
}
