package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"manifest-lint/internal/core"
	"manifest-lint/internal/types"
)

// Lint loads a manifest, collects structural errors from the schema
// validator and best-practice warnings from the linter, and optionally
// writes the combined report to a file. Schema errors pass through
// unchanged; the linter itself never produces errors.
func (s Service) Lint(ctx context.Context, req LintRequest) (LintResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return LintResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, raw, err := s.Manifests.LoadManifest(path)
	if err != nil {
		return LintResult{}, err
	}
	schemaErrors, err := s.Schema.ValidateManifest(raw)
	if err != nil {
		return LintResult{}, err
	}
	links, err := core.BuildLinks(manifest)
	if err != nil {
		return LintResult{}, err
	}
	warnings := s.Linter.Lint(ctx, manifest, links)
	result := LintResult{
		Manifest: manifest.Name,
		Errors:   schemaErrors,
		Warnings: warnings,
	}
	if reportPath := strings.TrimSpace(req.ReportPath); reportPath != "" {
		report := types.LintReport{
			Manifest: result.Manifest,
			Errors:   result.Errors,
			Warnings: result.Warnings,
		}
		if err := s.Reports.WriteReport(reportPath, report); err != nil {
			return LintResult{}, err
		}
	}
	return result, nil
}
