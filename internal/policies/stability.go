package policies

import (
	"strings"

	"manifest-lint/internal/types"
)

// stabilityRank orders release channels from least to most stable.
var stabilityRank = map[types.Stability]int{
	types.StabilityDev:    0,
	types.StabilityAlpha:  1,
	types.StabilityBeta:   2,
	types.StabilityRC:     3,
	types.StabilityStable: 4,
}

// ParseStability normalizes a raw minimum-stability value. The second
// return is false for values outside the known channel set.
func ParseStability(value string) (types.Stability, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev":
		return types.StabilityDev, true
	case "alpha":
		return types.StabilityAlpha, true
	case "beta":
		return types.StabilityBeta, true
	case "rc":
		return types.StabilityRC, true
	case "stable":
		return types.StabilityStable, true
	default:
		return "", false
	}
}

func IsStable(stability types.Stability) bool {
	return stability == types.StabilityStable
}

// MoreStable reports whether a is a stricter channel than b.
func MoreStable(a types.Stability, b types.Stability) bool {
	return stabilityRank[a] > stabilityRank[b]
}
