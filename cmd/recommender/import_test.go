package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBatch_RoundTripsSchemaFields(t *testing.T) {
	raw := `{
		"jobs": [
			{
				"title": "Senior Backend Engineer",
				"skills": ["Go", "PostgreSQL"],
				"description": "Own the recommendation services.",
				"address": "Remote",
				"url": "https://jobs.lever.co/acme/123"
			},
			{"title": "SRE"}
		]
	}`

	var batch importBatch
	require.NoError(t, json.Unmarshal([]byte(raw), &batch))
	require.Len(t, batch.Jobs, 2)

	assert.Equal(t, "Senior Backend Engineer", batch.Jobs[0].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, batch.Jobs[0].Skills)
	assert.Equal(t, "Remote", batch.Jobs[0].Address)
	assert.Equal(t, "https://jobs.lever.co/acme/123", batch.Jobs[0].URL)

	assert.Equal(t, "SRE", batch.Jobs[1].Title)
	assert.Empty(t, batch.Jobs[1].Skills)
}

func TestRunImport_FlagValidation(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		url     string
		wantErr string
	}{
		{"neither flag", "", "", "either --file or --url"},
		{"both flags", "jobs.json", "https://example.com", "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevFile, prevURL := importFile, importURL
			t.Cleanup(func() { importFile, importURL = prevFile, prevURL })
			importFile, importURL = tt.file, tt.url

			err := runImport(importCmd, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
