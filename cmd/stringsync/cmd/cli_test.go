package cmd

import (
	"testing"

	"github.com/oneconcern/stringsync/pkg/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestFormatReport(t *testing.T) {
	fixtures := []struct {
		name     string
		report   model.FileReport
		expected string
	}{
		{
			name: "added keys",
			report: model.FileReport{
				Path:    "loc/de.strings",
				Outcome: model.OutcomeAdded,
				Added:   []string{"a", "c"},
			},
			expected: "loc/de.strings: added 2 key(s): a, c",
		},
		{
			name: "in sync",
			report: model.FileReport{
				Path:    "loc/fr.strings",
				Outcome: model.OutcomeSynced,
			},
			expected: "loc/fr.strings: in sync",
		},
		{
			name: "parse failure with anomalies",
			report: model.FileReport{
				Path:      "loc/it.strings",
				Outcome:   model.OutcomeParseFailed,
				Anomalies: []string{"line 3: unterminated-statement (\"k\")"},
			},
			expected: "loc/it.strings: parse-failed: line 3: unterminated-statement (\"k\")",
		},
		{
			name: "write failure",
			report: model.FileReport{
				Path:    "loc/ja.strings",
				Outcome: model.OutcomeWriteFailed,
				Error:   "disk full",
			},
			expected: "loc/ja.strings: write-failed: disk full",
		},
		{
			name: "skipped",
			report: model.FileReport{
				Path:    "loc/ko.strings",
				Outcome: model.OutcomeSkipped,
				Error:   "base file has no entries",
			},
			expected: "loc/ko.strings: skipped (base file has no entries)",
		},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			assert.Equal(t, fixture.expected, formatReport(fixture.report))
		})
	}
}

func TestWriteReport(t *testing.T) {
	reportFs = afero.NewMemMapFs()
	defer func() { reportFs = nil }()

	reports := []model.FileReport{
		{Path: "loc/de.strings", Outcome: model.OutcomeAdded, Added: []string{"c"}},
		{Path: "loc/fr.strings", Outcome: model.OutcomeSynced},
	}
	require.NoError(t, writeReport("out/report.yaml", reports))

	b, err := afero.ReadFile(reportFs, "out/report.yaml")
	require.NoError(t, err)
	var got []model.FileReport
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, reports, got)

	// the staged copy never survives the rename
	exists, err := afero.Exists(reportFs, ".put-stage/out/report.yaml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVersionInfoDefaults(t *testing.T) {
	v := NewVersionInfo()
	assert.Equal(t, "dev", v.Version)
	assert.Contains(t, v.String(), "Version: dev")
}
