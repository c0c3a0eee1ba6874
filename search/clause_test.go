package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typePhrase(value string) *Phrase {
	return NewPhrase(value, "cancertype:"+value, []FieldName{FieldCancerType})
}

func textPhrase(value string) *Phrase {
	return NewPhrase(value, value, []FieldName{FieldStudyName, FieldStudyID, FieldDescription})
}

func TestClauseString(t *testing.T) {
	tests := []struct {
		name   string
		clause *Clause
		want   string
	}{
		{
			name:   "not clause",
			clause: Not(typePhrase("lung")),
			want:   "- cancertype:lung",
		},
		{
			name:   "empty not clause",
			clause: Not(nil),
			want:   "",
		},
		{
			name:   "and clause joins with single spaces",
			clause: And(typePhrase("lung"), textPhrase("tcga")),
			want:   "cancertype:lung tcga",
		},
		{
			name:   "single-phrase and clause",
			clause: And(textPhrase("tcga")),
			want:   "tcga",
		},
		{
			name:   "empty and clause",
			clause: And(),
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clause.String())
		})
	}
}

func TestClauseContainsPhrase(t *testing.T) {
	a := typePhrase("lung")
	b := textPhrase("tcga")

	tests := []struct {
		name   string
		clause *Clause
		phrase *Phrase
		want   bool
	}{
		{"nil phrase in empty and clause", And(), nil, true},
		{"nil phrase in non-empty clause", And(a), nil, false},
		{"nil phrase in empty not clause", Not(nil), nil, true},
		{"held phrase", And(a, b), typePhrase("lung"), true},
		{"missing phrase", And(a), textPhrase("tcga"), false},
		{"not clause wrapped phrase", Not(a), typePhrase("lung"), true},
		{"not clause other phrase", Not(a), b, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clause.ContainsPhrase(tt.phrase))
		})
	}
}

func TestClauseContainsFunc(t *testing.T) {
	c := And(typePhrase("lung"), textPhrase("tcga"))

	assert.True(t, c.ContainsFunc(func(p *Phrase) bool { return p.Value() == "tcga" }))
	assert.False(t, c.ContainsFunc(func(p *Phrase) bool { return p.Value() == "brca" }))
	assert.False(t, And().ContainsFunc(func(*Phrase) bool { return true }))
}

func TestClauseEqual(t *testing.T) {
	a := typePhrase("lung")
	b := textPhrase("tcga")

	tests := []struct {
		name string
		x, y *Clause
		want bool
	}{
		{
			name: "not never equals and",
			x:    Not(a),
			y:    And(a),
			want: false,
		},
		{
			name: "and never equals not",
			x:    And(a),
			y:    Not(a),
			want: false,
		},
		{
			name: "not clauses with equal phrases",
			x:    Not(a),
			y:    Not(typePhrase("lung")),
			want: true,
		},
		{
			name: "not clauses with different phrases",
			x:    Not(a),
			y:    Not(b),
			want: false,
		},
		{
			name: "and equality ignores order",
			x:    And(a, b),
			y:    And(b, a),
			want: true,
		},
		{
			name: "and equality ignores duplicates",
			x:    And(a, a, b),
			y:    And(b, a),
			want: true,
		},
		{
			name: "and clauses with different phrase sets",
			x:    And(a, b),
			y:    And(a),
			want: false,
		},
		{
			name: "empty and clauses",
			x:    And(),
			y:    And(),
			want: true,
		},
		{
			name: "nil other",
			x:    And(a),
			y:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.Equal(tt.y))
		})
	}
}

func TestAndClauseEqualSymmetric(t *testing.T) {
	a := typePhrase("lung")
	b := textPhrase("tcga")

	x := And(a, b)
	y := And(b, a)

	assert.True(t, x.Equal(y))
	assert.True(t, y.Equal(x))
}

func TestClauseMatch(t *testing.T) {
	study := Attrs{
		FieldStudyName:  "Lung Adenocarcinoma (TCGA)",
		FieldCancerType: "luad",
	}

	tests := []struct {
		name   string
		clause *Clause
		want   bool
	}{
		{"not clause excludes a matching study", Not(typePhrase("luad")), false},
		{"not clause passes a non-matching study", Not(typePhrase("brca")), true},
		{"and clause requires every phrase", And(textPhrase("lung"), typePhrase("brca")), false},
		{"and clause with all phrases matching", And(textPhrase("lung"), typePhrase("luad")), true},
		{"empty and clause matches everything", And(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clause.Match(study))
		})
	}
}

func TestClauseAccessors(t *testing.T) {
	a := typePhrase("lung")
	not := Not(a)
	and := And(a)

	assert.True(t, not.IsNot())
	assert.False(t, not.IsAnd())
	assert.True(t, and.IsAnd())
	assert.False(t, and.IsNot())

	assert.Equal(t, []*Phrase{a}, not.Phrases())
	assert.Equal(t, []*Phrase{a}, and.Phrases())
	assert.Empty(t, Not(nil).Phrases())
}
