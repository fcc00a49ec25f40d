package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/add_browse_delete.yaml")
	require.NoError(t, err)

	assert.Equal(t, "add_browse_delete", s.Name)
	assert.NotEmpty(t, s.Description)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, "Dune", s.Steps[0].Add.Title)
	assert.Equal(t, 2, s.Steps[3].Delete.Position)
	assert.NotEmpty(t, s.Assertions)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "assertion instead of assertions"
steps:
  - add: { title: A, author: B, year: "1" }
assertion:
  - type: collection_size
    count: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "no name"
steps:
  - add: { title: A, author: B, year: "1" }
assertions:
  - type: collection_size
    count: 1
`,
			wantErr: "name is required",
		},
		{
			name: "missing steps",
			content: `
name: s
description: "no steps"
assertions:
  - type: collection_size
    count: 1
`,
			wantErr: "steps list is required",
		},
		{
			name: "missing assertions",
			content: `
name: s
description: "no assertions"
steps:
  - add: { title: A, author: B, year: "1" }
`,
			wantErr: "assertions list is required",
		},
		{
			name: "two operations in one step",
			content: `
name: s
description: "ambiguous step"
steps:
  - add: { title: A, author: B, year: "1" }
    delete: { position: 1 }
assertions:
  - type: collection_size
    count: 1
`,
			wantErr: "exactly one of add/delete/edit/search/page",
		},
		{
			name: "add with empty field",
			content: `
name: s
description: "incomplete add"
steps:
  - add: { title: A, author: B }
assertions:
  - type: collection_size
    count: 1
`,
			wantErr: "title, author and year are required",
		},
		{
			name: "edit without overrides",
			content: `
name: s
description: "edit that changes nothing"
steps:
  - edit: { position: 1 }
assertions:
  - type: collection_size
    count: 1
`,
			wantErr: "at least one of title/author/year",
		},
		{
			name: "unknown assertion type",
			content: `
name: s
description: "bad assertion"
steps:
  - add: { title: A, author: B, year: "1" }
assertions:
  - type: trace_contains
`,
			wantErr: `unknown assertion type "trace_contains"`,
		},
		{
			name: "record_at without expect",
			content: `
name: s
description: "incomplete record_at"
steps:
  - add: { title: A, author: B, year: "1" }
assertions:
  - type: record_at
    position: 1
`,
			wantErr: "expect is required for record_at",
		},
		{
			name: "view asserting nothing",
			content: `
name: s
description: "empty view assertion"
steps:
  - add: { title: A, author: B, year: "1" }
assertions:
  - type: view
`,
			wantErr: "must check at least one field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_EditDistinguishesUnsetFromEmpty(t *testing.T) {
	path := writeScenario(t, `
name: s
description: "only year is overridden"
steps:
  - edit: { position: 1, year: "1966" }
assertions:
  - type: collection_size
    count: 1
`)
	s, err := LoadScenario(path)
	require.NoError(t, err)

	edit := s.Steps[0].Edit
	require.NotNil(t, edit)
	assert.Nil(t, edit.Title)
	assert.Nil(t, edit.Author)
	require.NotNil(t, edit.Year)
	assert.Equal(t, "1966", *edit.Year)
}
