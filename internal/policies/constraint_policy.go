package policies

import (
	"fmt"
	"strings"

	"manifest-lint/internal/types"
)

// constraintFlags classifies the flattened parts of one link's
// constraint. The three advisory checks derived from it are independent,
// so a single link can emit zero to three warnings.
type constraintFlags struct {
	hasStar   bool
	hasMaster bool
	hasLower  bool
	hasUpper  bool
}

type ConstraintPolicy struct{}

func NewConstraintPolicy() ConstraintPolicy {
	return ConstraintPolicy{}
}

// Advise returns best-practice warnings for one dependency link, each
// naming the link's target package.
func (p ConstraintPolicy) Advise(link types.Link) []string {
	flags := evaluateFlags(link.Constraint)
	var warnings []string
	if flags.hasLower && !flags.hasUpper {
		warnings = append(warnings, fmt.Sprintf(
			"%s: constraint has no upper bound; use a next-significant-release constraint (e.g. >=1.2,<2.0) to avoid pulling in breaking releases",
			link.Target))
	}
	if flags.hasStar {
		warnings = append(warnings, fmt.Sprintf(
			"%s: using a * constraint is discouraged; define a specific version range instead",
			link.Target))
	}
	if flags.hasMaster {
		warnings = append(warnings, fmt.Sprintf(
			"%s: requiring dev-master is discouraged; require a tagged release or a branch alias instead",
			link.Target))
	}
	return warnings
}

func evaluateFlags(constraint types.Constraint) constraintFlags {
	var flags constraintFlags
	if constraint == nil {
		return flags
	}
	for _, part := range constraint.Flatten() {
		rendered := strings.ToLower(part.String())
		if strings.Contains(rendered, "*") {
			flags.hasStar = true
		} else if strings.Contains(rendered, "dev-master") {
			flags.hasMaster = true
		}
		switch part.Op {
		case types.ConstraintOpGt, types.ConstraintOpGte:
			flags.hasLower = true
		case types.ConstraintOpLt, types.ConstraintOpLte:
			flags.hasUpper = true
		}
	}
	return flags
}
