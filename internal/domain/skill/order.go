package skill

import (
	"cmp"
	"slices"
	"strings"
)

// OrderBy is the listing order as SQL: category, then name, compared
// byte-wise so "Zeta" sorts before "alpha". id keeps insertion order on ties.
var OrderBy = []string{
	`category COLLATE "C" ASC`,
	`name COLLATE "C" ASC`,
	"id ASC",
}

// Compare is OrderBy as a comparator.
func Compare(a, b *Skill) int {
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Sort orders skills in place.
func Sort(skills []*Skill) {
	slices.SortStableFunc(skills, Compare)
}

func IsSorted(skills []*Skill) bool {
	return slices.IsSortedFunc(skills, Compare)
}
