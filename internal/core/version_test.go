package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-lint/internal/types"
)

// ---------------------------------------------------------------------------
// CompareVersions
// ---------------------------------------------------------------------------

func TestCompareVersionsBranchEquality(t *testing.T) {
	ok, err := CompareVersions("dev-foo", "dev-foo", types.ConstraintOpEq2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CompareVersions("dev-foo", "dev-bar", types.ConstraintOpEq2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompareVersionsBranchOrderingIsFalse(t *testing.T) {
	for _, op := range []types.ConstraintOp{
		types.ConstraintOpLt, types.ConstraintOpLte,
		types.ConstraintOpGt, types.ConstraintOpGte,
		types.ConstraintOpNe,
	} {
		ok, err := CompareVersions("dev-foo", "dev-bar", op)
		require.NoError(t, err)
		assert.False(t, ok, "operator %s", op)
	}
}

func TestCompareVersionsSemver(t *testing.T) {
	tests := []struct {
		a      string
		b      string
		op     types.ConstraintOp
		expect bool
	}{
		{"1.0.0", "2.0.0", types.ConstraintOpLt, true},
		{"2.0.0", "1.0.0", types.ConstraintOpLt, false},
		{"1.0.0", "1.0.0", types.ConstraintOpEq, true},
		{"1.0.0", "1.0.0", types.ConstraintOpGte, true},
		{"1.0.0", "1.0.1", types.ConstraintOpNe, true},
		{"2.0.0", "1.9.9", types.ConstraintOpGt, true},
		{"1.0.0-alpha", "1.0.0", types.ConstraintOpLt, true},
	}
	for _, tt := range tests {
		ok, err := CompareVersions(tt.a, tt.b, tt.op)
		require.NoError(t, err)
		assert.Equal(t, tt.expect, ok, "%s %s %s", tt.a, tt.op, tt.b)
	}
}

func TestCompareVersionsPartialVersions(t *testing.T) {
	ok, err := CompareVersions("1.0", "2.0", types.ConstraintOpLt)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareVersionsInvalidVersion(t *testing.T) {
	_, err := CompareVersions("not-a-version!!!", "1.0.0", types.ConstraintOpLt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestCompareVersionsUnsupportedOperator(t *testing.T) {
	_, err := CompareVersions("1.0.0", "2.0.0", types.ConstraintOpNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported comparison operator")
}

// ---------------------------------------------------------------------------
// LatestVersion
// ---------------------------------------------------------------------------

func TestLatestVersionPicksHighest(t *testing.T) {
	latest, err := LatestVersion([]string{"1.0.0", "1.9.3", "1.2.0"})
	require.NoError(t, err)
	assert.Equal(t, "1.9.3", latest)
}

func TestLatestVersionSkipsBranches(t *testing.T) {
	latest, err := LatestVersion([]string{"dev-main", "1.2.0", "dev-master"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", latest)
}

func TestLatestVersionPreReleaseOrdering(t *testing.T) {
	// Pre-release sorts below its release but above older majors.
	latest, err := LatestVersion([]string{"2.0.0-alpha", "1.9.0"})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-alpha", latest)

	latest, err = LatestVersion([]string{"2.0.0-alpha", "2.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest)
}

func TestLatestVersionNoReleases(t *testing.T) {
	_, err := LatestVersion([]string{"dev-main", "not-a-version!!!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no release versions")
}

func TestLatestVersionEmpty(t *testing.T) {
	_, err := LatestVersion(nil)
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Satisfies
// ---------------------------------------------------------------------------

func TestSatisfiesBoundedRange(t *testing.T) {
	constraint, err := ParseConstraint(">=1.0,<2.0")
	require.NoError(t, err)
	assert.True(t, Satisfies(constraint, "1.5.0"))
	assert.False(t, Satisfies(constraint, "2.0.0"))
	assert.False(t, Satisfies(constraint, "0.9.0"))
}

func TestSatisfiesBareVersionIsExact(t *testing.T) {
	constraint, err := ParseConstraint("1.4.2")
	require.NoError(t, err)
	assert.True(t, Satisfies(constraint, "1.4.2"))
	assert.False(t, Satisfies(constraint, "1.5.0"))
}

func TestSatisfiesNilConstraint(t *testing.T) {
	assert.True(t, Satisfies(nil, "1.0.0"))
}

func TestSatisfiesInvalidVersion(t *testing.T) {
	constraint, err := ParseConstraint(">=1.0")
	require.NoError(t, err)
	assert.False(t, Satisfies(constraint, "not-a-version!!!"))
}
