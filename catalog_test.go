package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orian/studysearch/search"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `[
		{"studyId": "luad_tcga", "name": "Lung Adenocarcinoma (TCGA)", "cancertype": "luad"},
		{"studyId": "gbm_cptac", "cancertype": "gbm"}
	]`)

	studies, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, studies, 2)

	name, ok := studies[0].Attr(search.FieldStudyName)
	assert.True(t, ok)
	assert.Equal(t, "Lung Adenocarcinoma (TCGA)", name)

	_, ok = studies[1].Attr(search.FieldStudyName)
	assert.False(t, ok)
}

func TestLoadCatalogErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadCatalog(writeCatalog(t, `{"not": "an array"}`))
		assert.Error(t, err)
	})
}

func TestStudyLabel(t *testing.T) {
	tests := []struct {
		name  string
		study search.Attrs
		want  string
	}{
		{
			name:  "prefers the study name",
			study: search.Attrs{search.FieldStudyName: "Glioblastoma", search.FieldStudyID: "gbm"},
			want:  "Glioblastoma",
		},
		{
			name:  "falls back to the id",
			study: search.Attrs{search.FieldStudyID: "gbm"},
			want:  "gbm",
		},
		{
			name:  "placeholder when neither is set",
			study: search.Attrs{},
			want:  "(unnamed study)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studyLabel(tt.study))
		})
	}
}
