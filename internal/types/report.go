package types

// LintReport is the serializable outcome of one lint run. Errors come
// from the schema validator; warnings from the linter. Both lists keep
// their emission order.
type LintReport struct {
	Manifest string   `yaml:"manifest"`
	Errors   []string `yaml:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
}

// PackageIndexFile is the on-disk package index backing latest-version
// lookups: package name to known version list.
type PackageIndexFile struct {
	Packages map[string][]string `yaml:"packages"`
}
