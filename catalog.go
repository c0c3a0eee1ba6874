package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/orian/studysearch/search"
)

// LoadCatalog reads a study catalog: a JSON array of flat
// string-attribute objects, e.g.
//
//	[{"studyId":"luad_tcga","name":"Lung Adenocarcinoma (TCGA)",
//	  "cancertype":"luad","tags":"tcga"}]
func LoadCatalog(path string) ([]search.Attrs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw []map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	studies := make([]search.Attrs, 0, len(raw))
	for _, entry := range raw {
		attrs := make(search.Attrs, len(entry))
		for k, v := range entry {
			attrs[search.FieldName(k)] = v
		}
		studies = append(studies, attrs)
	}

	return studies, nil
}

// studyLabel picks a display name for a catalog entry.
func studyLabel(study search.Attrs) string {
	if name, ok := study.Attr(search.FieldStudyName); ok && name != "" {
		return name
	}
	if id, ok := study.Attr(search.FieldStudyID); ok && id != "" {
		return id
	}
	return "(unnamed study)"
}
