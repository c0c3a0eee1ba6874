package search

import "strings"

// FilterForm registers a "prefix:value" token form with the parser:
// tokens carrying the prefix are matched against the form's fields
// instead of the default free-text fields. A comma in the value turns
// the token into a list phrase.
type FilterForm struct {
	Prefix string
	Fields []FieldName
}

// Parser turns raw query text into clauses. A parser carries the
// default fields free-text phrases are tested against plus the
// registered prefix filter forms.
type Parser struct {
	defaults []FieldName
	forms    map[string][]FieldName
}

// NewParser builds a parser with the given default free-text fields
// and prefix filter forms.
func NewParser(defaults []FieldName, forms ...FilterForm) *Parser {
	p := &Parser{
		defaults: defaults,
		forms:    make(map[string][]FieldName, len(forms)),
	}
	for _, f := range forms {
		p.forms[f.Prefix] = f.Fields
	}
	return p
}

// DefaultParser returns a parser over the standard study attributes:
// free text searches the study name, id and description, while the
// "cancertype:", "tag:" and "reference-genome:" prefixes target their
// dedicated attributes.
func DefaultParser() *Parser {
	return NewParser(
		[]FieldName{FieldStudyName, FieldStudyID, FieldDescription},
		FilterForm{Prefix: "cancertype", Fields: []FieldName{FieldCancerType}},
		FilterForm{Prefix: "tag", Fields: []FieldName{FieldTags}},
		FilterForm{Prefix: "reference-genome", Fields: []FieldName{FieldReferenceGenome}},
	)
}

// Parse tokenizes query on whitespace and groups the phrases into
// clauses: a "-" token negates the phrase that follows it into its own
// not-clause, every other phrase joins a single conjunctive clause.
// A dangling trailing "-" is ignored. Parsing never fails; an empty
// query yields no clauses.
func (p *Parser) Parse(query string) []*Clause {
	tokens := strings.Fields(query)

	var clauses []*Clause
	var conj []*Phrase
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == NotMarker {
			if i+1 == len(tokens) {
				break
			}
			i++
			clauses = append(clauses, Not(p.phrase(tokens[i])))
			continue
		}
		conj = append(conj, p.phrase(tokens[i]))
	}
	if len(conj) > 0 {
		clauses = append(clauses, And(conj...))
	}
	return clauses
}

// phrase builds the Phrase for a single token, resolving a registered
// prefix to its filter fields. Tokens with an unregistered prefix are
// treated as free text, colon included.
func (p *Parser) phrase(token string) *Phrase {
	if prefix, value, found := strings.Cut(token, FieldSeparator); found {
		if fields, ok := p.forms[prefix]; ok {
			if strings.Contains(value, ListSeparator) {
				return NewListPhrase(value, token, fields)
			}
			return NewPhrase(value, token, fields)
		}
	}
	return NewPhrase(token, token, p.defaults)
}

// QueryString serializes clauses back to query text, joining the
// non-empty clause forms with single spaces. For clause sets produced
// by Parse this is the canonical inverse: re-parsing the result yields
// an equal clause set.
func QueryString(clauses []*Clause) string {
	var parts []string
	for _, c := range clauses {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// MatchesAll reports whether node satisfies every clause. An empty
// clause set matches everything.
func MatchesAll(clauses []*Clause, node Node) bool {
	for _, c := range clauses {
		if !c.Match(node) {
			return false
		}
	}
	return true
}
