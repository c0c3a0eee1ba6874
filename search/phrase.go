package search

import (
	"slices"
	"strings"
)

// Separators of the query text form. The field separator splits a
// "prefix:value" token, the list separator splits a multi-valued
// phrase, and the not marker negates the phrase that follows it.
const (
	FieldSeparator = ":"
	ListSeparator  = ","
	NotMarker      = "-"
)

// PhraseKind discriminates the two phrase variants. The set is closed;
// matching and equality dispatch exhaustively on it.
type PhraseKind int

const (
	// KindDefault matches a single value as a substring.
	KindDefault PhraseKind = iota

	// KindList matches any one of several comma-separated values.
	KindList
)

// Phrase is the atomic matching unit of a search filter: a value (or
// list of alternative values) plus the study fields it is tested
// against. Fields have OR semantics: the phrase matches a study when
// any one of them does.
//
// Phrases are immutable after construction; Match, Equal and String
// are pure and safe for concurrent use.
type Phrase struct {
	kind   PhraseKind
	value  string
	list   []string
	prefix string
	text   string
	fields []FieldName
}

// NewPhrase builds a single-value phrase. text is the verbatim
// serialized form including any field prefix (e.g. "cancertype:lung")
// and is preserved unchanged for display and round-tripping.
func NewPhrase(value, text string, fields []FieldName) *Phrase {
	return &Phrase{
		kind:   KindDefault,
		value:  value,
		text:   text,
		fields: slices.Clone(fields),
	}
}

// NewListPhrase builds a comma-separated list phrase. The value is
// split on "," into the alternatives; the prefix is whatever precedes
// the first ":" in text, or the whole text when there is none.
func NewListPhrase(value, text string, fields []FieldName) *Phrase {
	return &Phrase{
		kind:   KindList,
		list:   strings.Split(value, ListSeparator),
		prefix: strings.SplitN(text, FieldSeparator, 2)[0],
		text:   text,
		fields: slices.Clone(fields),
	}
}

// Kind reports which variant this phrase is.
func (p *Phrase) Kind() PhraseKind { return p.kind }

// Value returns the raw matching value. For list phrases it is the
// canonical form, the alternatives rejoined with ",".
func (p *Phrase) Value() string {
	if p.kind == KindList {
		return strings.Join(p.list, ListSeparator)
	}
	return p.value
}

// List returns the alternatives of a list phrase, nil for the default
// variant. Callers must not modify the returned slice.
func (p *Phrase) List() []string { return p.list }

// Prefix returns the text before the field separator of a list phrase.
func (p *Phrase) Prefix() string { return p.prefix }

// Fields returns the study attributes this phrase is tested against,
// in declaration order. Callers must not modify the returned slice.
func (p *Phrase) Fields() []FieldName { return p.fields }

// String returns the verbatim text representation.
func (p *Phrase) String() string { return p.text }

// Match reports whether any of the phrase's fields is present on node
// with a value containing the phrase, compared case-insensitively as a
// substring. Absent or empty attributes never match.
func (p *Phrase) Match(node Node) bool {
	for _, f := range p.fields {
		v, ok := node.Attr(f)
		if !ok || v == "" {
			continue
		}
		if p.matchValue(v) {
			return true
		}
	}
	return false
}

func (p *Phrase) matchValue(v string) bool {
	v = strings.ToLower(v)
	if p.kind == KindList {
		// Any listed alternative counts as a field match.
		for _, want := range p.list {
			if strings.Contains(v, strings.ToLower(want)) {
				return true
			}
		}
		return false
	}
	return strings.Contains(v, strings.ToLower(p.value))
}

// Equal reports structural equality: same variant, identical values
// (exact, case-sensitive; element-wise and order-sensitive for list
// phrases) and identical field sequences in order. A nil other is
// never equal.
func (p *Phrase) Equal(other *Phrase) bool {
	if other == nil || p.kind != other.kind {
		return false
	}
	if p.kind == KindList {
		if !slices.Equal(p.list, other.list) {
			return false
		}
	} else if p.value != other.value {
		return false
	}
	return slices.Equal(p.fields, other.fields)
}
