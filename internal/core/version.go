package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"manifest-lint/internal/types"
)

const devPrefix = "dev-"

// CompareVersions evaluates "a op b". Two branch versions (dev- prefix
// on both sides) have no real ordering: they compare equal only under an
// equality operator with byte-identical strings, and every other
// operator yields false.
func CompareVersions(a string, b string, op types.ConstraintOp) (bool, error) {
	if strings.HasPrefix(a, devPrefix) && strings.HasPrefix(b, devPrefix) {
		equal := op == types.ConstraintOpEq || op == types.ConstraintOpEq2
		return equal && a == b, nil
	}
	va, err := semver.NewVersion(a)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %s", a)).
			WithCause(err)
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %s", b)).
			WithCause(err)
	}
	result := va.Compare(vb)
	switch op {
	case types.ConstraintOpEq, types.ConstraintOpEq2:
		return result == 0, nil
	case types.ConstraintOpNe:
		return result != 0, nil
	case types.ConstraintOpLt:
		return result < 0, nil
	case types.ConstraintOpLte:
		return result <= 0, nil
	case types.ConstraintOpGt:
		return result > 0, nil
	case types.ConstraintOpGte:
		return result >= 0, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported comparison operator: %q", string(op)))
	}
}

// LatestVersion picks the highest release from the candidate list.
// Branch versions and unparsable entries are skipped; they never qualify
// as latest.
func LatestVersion(candidates []string) (string, error) {
	parsed := make([]*semver.Version, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, devPrefix) {
			continue
		}
		version, err := semver.NewVersion(candidate)
		if err != nil {
			continue
		}
		parsed = append(parsed, version)
	}
	if len(parsed) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no release versions among candidates")
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].GreaterThan(parsed[j])
	})
	return parsed[0].Original(), nil
}

// Satisfies reports whether version meets every part of the constraint.
// Bare parts (no operator) are treated as exact matches; any comparison
// failure counts as unsatisfied.
func Satisfies(constraint types.Constraint, version string) bool {
	if constraint == nil {
		return true
	}
	for _, part := range constraint.Flatten() {
		op := part.Op
		if op == types.ConstraintOpNone {
			op = types.ConstraintOpEq
		}
		ok, err := CompareVersions(version, part.Version, op)
		if err != nil || !ok {
			return false
		}
	}
	return true
}
