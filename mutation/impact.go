// Package mutation maps Mutation Assessor functional-impact codes to
// their display metadata: label, CSS class hook and sort priority.
package mutation

// Impact describes how a functional-impact score is presented.
// Priority orders scores for sorting; higher is more severe.
type Impact struct {
	Label     string `json:"label"`
	ClassName string `json:"className"`
	Priority  int    `json:"priority"`
}

// impactByCode is the fixed score table, initialized once at program
// start and never mutated.
var impactByCode = map[string]Impact{
	"H": {Label: "High", ClassName: "oma-high", Priority: 4},
	"M": {Label: "Medium", ClassName: "oma-medium", Priority: 3},
	"L": {Label: "Low", ClassName: "oma-low", Priority: 2},
	"N": {Label: "Neutral", ClassName: "oma-neutral", Priority: 1},
}

// ForCode resolves an impact code to its display metadata. Unknown or
// empty codes fall back to the raw text as the label, with no class
// and priority 0 so they sort after every known score.
func ForCode(code string) Impact {
	if impact, ok := impactByCode[code]; ok {
		return impact
	}
	return Impact{Label: code}
}

// Priority returns the sort priority for code.
func Priority(code string) int {
	return ForCode(code).Priority
}
