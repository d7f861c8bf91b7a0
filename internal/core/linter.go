package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"manifest-lint/internal/policies"
	"manifest-lint/internal/types"
)

// ManifestLinter inspects a parsed manifest and its dependency links for
// best-practice problems. It only ever appends warnings: structural
// errors are the schema validator's job, and the linter never blocks an
// operation or mutates its inputs.
type ManifestLinter struct {
	constraints policies.ConstraintPolicy
}

func NewManifestLinter() ManifestLinter {
	return ManifestLinter{constraints: policies.NewConstraintPolicy()}
}

// Lint returns advisory warnings for the manifest and its required
// links. Manifest-level warnings come first, then per-link warnings in
// link order. Links are expected to be deduplicated by the caller.
func (l ManifestLinter) Lint(ctx context.Context, manifest types.Manifest, links []types.Link) []string {
	var warnings []string
	if len(manifest.Extra.BranchAlias) == 0 {
		warnings = append(warnings,
			"Provide a branch alias to make it easier for developers to reference development versions of this package")
	}
	if manifest.MinimumStability != "" {
		stability, known := policies.ParseStability(manifest.MinimumStability)
		if !known || !policies.IsStable(stability) {
			warnings = append(warnings, fmt.Sprintf(
				"minimum-stability is set to %q: prefer stable and use per-dependency stability flags for packages that need a less stable channel",
				manifest.MinimumStability))
		}
	}
	for _, link := range links {
		warnings = append(warnings, l.constraints.Advise(link)...)
	}
	log.Ctx(ctx).Debug().
		Str("manifest", manifest.Name).
		Int("links", len(links)).
		Int("warnings", len(warnings)).
		Msg("manifest linted")
	return warnings
}
