package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"manifest-lint/internal/types"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	adapter := NewReportFileAdapter()
	report := types.LintReport{
		Manifest: "acme/widgets",
		Warnings: []string{"acme/gears: constraint has no upper bound"},
	}
	require.NoError(t, adapter.WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.LintReport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, report, decoded)
}

func TestWriteReportCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.yaml")
	adapter := NewReportFileAdapter()
	require.NoError(t, adapter.WriteReport(path, types.LintReport{Manifest: "acme/widgets"}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
