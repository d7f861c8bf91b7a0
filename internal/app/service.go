package app

import (
	"manifest-lint/internal/adapters"
	"manifest-lint/internal/core"
	"manifest-lint/internal/ports"
)

type Service struct {
	Manifests ports.ManifestPort
	Schema    ports.SchemaPort
	Reports   ports.ReportPort
	Linter    core.ManifestLinter
}

func NewService() Service {
	return Service{
		Manifests: adapters.NewManifestFileAdapter(),
		Schema:    adapters.NewSchemaValidatorAdapter(),
		Reports:   adapters.NewReportFileAdapter(),
		Linter:    core.NewManifestLinter(),
	}
}
