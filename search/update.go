package search

// Update is the delta a filter editor produces against the current
// clause set: clauses to add and phrases to strip out. It carries no
// behavior of its own; ApplyUpdate folds it into a clause set.
type Update struct {
	ToAdd    []*Clause
	ToRemove []*Phrase
}

// ApplyUpdate returns clauses with every ToRemove phrase stripped out
// and each ToAdd clause appended unless an equal clause is already
// present. A not-clause whose phrase is removed disappears; an
// and-clause sheds the phrase and disappears when nothing remains.
// The input slice is not modified.
func ApplyUpdate(clauses []*Clause, u Update) []*Clause {
	out := make([]*Clause, 0, len(clauses)+len(u.ToAdd))
	for _, c := range clauses {
		if c = removePhrases(c, u.ToRemove); c != nil {
			out = append(out, c)
		}
	}
	for _, add := range u.ToAdd {
		if !ContainsClause(out, add) {
			out = append(out, add)
		}
	}
	return out
}

// ContainsClause reports whether clauses already holds a clause equal
// to c.
func ContainsClause(clauses []*Clause, c *Clause) bool {
	for _, have := range clauses {
		if have.Equal(c) {
			return true
		}
	}
	return false
}

// removePhrases returns c without the given phrases, nil when nothing
// remains, and c itself when no phrase was removed.
func removePhrases(c *Clause, remove []*Phrase) *Clause {
	if len(remove) == 0 {
		return c
	}
	var kept []*Phrase
	for _, p := range c.Phrases() {
		removed := false
		for _, r := range remove {
			if p.Equal(r) {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, p)
		}
	}
	switch {
	case len(kept) == len(c.Phrases()):
		return c
	case len(kept) == 0:
		return nil
	default:
		return And(kept...)
	}
}
