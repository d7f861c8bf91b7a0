package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"manifest-lint/internal/shared"
	"manifest-lint/internal/types"
)

// BuildLinks merges require and require-dev into one deduplicated list
// of dependency links. Run-time requirements win when both sections name
// the same target. Manifest maps are unordered, so links are emitted in
// lexical target order per section to keep output deterministic.
func BuildLinks(manifest types.Manifest) ([]types.Link, error) {
	seen := map[string]struct{}{}
	var links []types.Link
	for _, section := range []map[string]string{manifest.Require, manifest.RequireDev} {
		for _, name := range shared.SortedKeys(section) {
			target := shared.NormalizePackageName(name)
			if target == "" {
				continue
			}
			if _, ok := seen[target]; ok {
				continue
			}
			constraint, err := ParseConstraint(section[name])
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid constraint for %s", target)).
					WithCause(err)
			}
			seen[target] = struct{}{}
			links = append(links, types.Link{
				Source:     manifest.Name,
				Target:     target,
				Constraint: constraint,
			})
		}
	}
	return links, nil
}
