package project

import (
	"cmp"
	"slices"
)

// OrderBy lists featured projects first, newest first within each group.
var OrderBy = []string{
	"is_featured DESC",
	"created_at DESC",
	"id ASC",
}

// Compare is OrderBy as a comparator.
func Compare(a, b *Project) int {
	if a.IsFeatured != b.IsFeatured {
		if a.IsFeatured {
			return -1
		}
		return 1
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func Sort(projects []*Project) {
	slices.SortStableFunc(projects, Compare)
}

func IsSorted(projects []*Project) bool {
	return slices.IsSortedFunc(projects, Compare)
}
