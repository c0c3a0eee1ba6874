package search

import "strings"

// Clause is a boolean-combinable unit of a search filter. The variant
// set is closed: a not-clause wraps exactly one phrase and excludes
// studies matching it; an and-clause holds zero or more phrases and
// includes only studies matching every one of them.
//
// The phrase collection is fixed at construction; clauses are
// immutable values.
type Clause struct {
	negated bool
	phrases []*Phrase
}

// Not builds a clause excluding studies that match p.
func Not(p *Phrase) *Clause {
	c := &Clause{negated: true}
	if p != nil {
		c.phrases = []*Phrase{p}
	}
	return c
}

// And builds a clause requiring every given phrase to match. An empty
// and-clause matches everything.
func And(phrases ...*Phrase) *Clause {
	return &Clause{phrases: append([]*Phrase(nil), phrases...)}
}

// IsNot reports whether this is a negated clause.
func (c *Clause) IsNot() bool { return c.negated }

// IsAnd reports whether this is a conjunctive clause.
func (c *Clause) IsAnd() bool { return !c.negated }

// Phrases returns the held phrases in insertion order. Callers must
// not modify the returned slice.
func (c *Clause) Phrases() []*Phrase { return c.phrases }

// String serializes the clause: "- <phrase>" for a not-clause, the
// phrase texts joined by single spaces for an and-clause. Empty
// clauses serialize to the empty string.
func (c *Clause) String() string {
	if c.negated {
		if len(c.phrases) == 0 {
			return ""
		}
		return NotMarker + " " + c.phrases[0].String()
	}
	parts := make([]string, len(c.phrases))
	for i, p := range c.phrases {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// ContainsPhrase reports whether the clause holds a phrase structurally
// equal to p. A nil p is contained only by a clause holding no phrases.
func (c *Clause) ContainsPhrase(p *Phrase) bool {
	if p == nil {
		return len(c.phrases) == 0
	}
	for _, held := range c.phrases {
		if held.Equal(p) {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any held phrase satisfies f.
func (c *Clause) ContainsFunc(f func(*Phrase) bool) bool {
	for _, held := range c.phrases {
		if f(held) {
			return true
		}
	}
	return false
}

// Equal compares clauses for filter-set deduplication. Not- and
// and-clauses are never equal to each other. A not-clause equals
// another clause when the other contains its wrapped phrase, so the
// relation is containment-based rather than a mutual check. And-clause
// equality is mutual containment of every phrase, insensitive to order
// and duplicates. A nil other is never equal.
func (c *Clause) Equal(other *Clause) bool {
	if other == nil || c.negated != other.negated {
		return false
	}
	if c.negated {
		var wrapped *Phrase
		if len(c.phrases) > 0 {
			wrapped = c.phrases[0]
		}
		return other.ContainsPhrase(wrapped)
	}
	for _, p := range c.phrases {
		if !other.ContainsPhrase(p) {
			return false
		}
	}
	for _, p := range other.phrases {
		if !c.ContainsPhrase(p) {
			return false
		}
	}
	return true
}

// Match evaluates the clause against a study entry: a not-clause
// matches when its phrase does not, an and-clause when every phrase
// does.
func (c *Clause) Match(node Node) bool {
	if c.negated {
		return len(c.phrases) == 0 || !c.phrases[0].Match(node)
	}
	for _, p := range c.phrases {
		if !p.Match(node) {
			return false
		}
	}
	return true
}
