// Package search implements the free-text filter language used to
// narrow cancer-study catalogs. Raw query text is parsed into phrases
// (atomic values tested against study attributes) grouped into clauses
// (negated or conjunctive), which are then evaluated against study
// entries and compared against each other to keep a filter set free of
// duplicates.
package search

// FieldName identifies a string-valued attribute of a study entry.
type FieldName string

// Standard study attributes known to the default parser.
const (
	FieldStudyID         FieldName = "studyId"
	FieldStudyName       FieldName = "name"
	FieldDescription     FieldName = "description"
	FieldCancerType      FieldName = "cancertype"
	FieldTags            FieldName = "tags"
	FieldReferenceGenome FieldName = "referenceGenome"
)

// Node exposes the attributes a phrase is tested against.
//
// Implementations return ok=false for attributes they do not carry;
// an absent attribute is never an error, it simply does not match.
type Node interface {
	Attr(name FieldName) (string, bool)
}

// Attrs is a map-backed Node, the common shape for catalog entries
// decoded from JSON.
type Attrs map[FieldName]string

func (a Attrs) Attr(name FieldName) (string, bool) {
	v, ok := a[name]
	return v, ok
}
