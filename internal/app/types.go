package app

type LintRequest struct {
	ManifestPath string
	ReportPath   string
}

type LintResult struct {
	Manifest string
	Errors   []string
	Warnings []string
}

type LatestRequest struct {
	ManifestPath string
	IndexPath    string
}

type LatestEntry struct {
	Package    string
	Constraint string
	Latest     string
	Satisfied  bool
}

type LatestResult struct {
	Manifest string
	Entries  []LatestEntry
}
