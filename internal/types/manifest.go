package types

// Extra carries free-form manifest extensions. Only branch-alias is
// interpreted by the linter; unknown keys are preserved by the decoder
// but ignored here.
type Extra struct {
	BranchAlias map[string]string `yaml:"branch-alias,omitempty"`
}

// Manifest is parsed package metadata. It is a read-only input: the
// linter never mutates it.
type Manifest struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description,omitempty"`
	Version          string            `yaml:"version,omitempty"`
	License          string            `yaml:"license,omitempty"`
	MinimumStability string            `yaml:"minimum-stability,omitempty"`
	Require          map[string]string `yaml:"require,omitempty"`
	RequireDev       map[string]string `yaml:"require-dev,omitempty"`
	Extra            Extra             `yaml:"extra,omitempty"`
}

// Link is a dependency edge from the manifest's package to a required
// target with its parsed version constraint.
type Link struct {
	Source     string
	Target     string
	Constraint Constraint
}
