package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"manifest-lint/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpEq2,
	types.ConstraintOpNe,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
	types.ConstraintOpEq,
}

// ParseConstraint parses a raw constraint string into the constraint
// model. Comma or space separated parts form a conjunction; a single
// part stays a SimpleConstraint. Bare versions, wildcard versions and
// dev- branch references parse with ConstraintOpNone.
func ParseConstraint(raw string) (types.Constraint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty constraint")
	}
	tokens := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	parts := make([]types.Constraint, 0, len(tokens))
	for _, token := range tokens {
		simple, err := parseSimple(token)
		if err != nil {
			return nil, err
		}
		parts = append(parts, simple)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return types.MultiConstraint{Parts: parts}, nil
}

func parseSimple(token string) (types.SimpleConstraint, error) {
	for _, op := range opTokens {
		if strings.HasPrefix(token, string(op)) {
			version := strings.TrimSpace(strings.TrimPrefix(token, string(op)))
			if version == "" {
				return types.SimpleConstraint{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid constraint: %s", token))
			}
			return types.SimpleConstraint{Op: op, Version: version}, nil
		}
	}
	return types.SimpleConstraint{Op: types.ConstraintOpNone, Version: token}, nil
}
