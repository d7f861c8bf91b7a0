package ports

import "manifest-lint/internal/types"

type ReportPort interface {
	WriteReport(path string, report types.LintReport) error
}
