// Package ordering sorts projects into the order they appear on the page.
package ordering

import (
	"cmp"
	"slices"

	"github.com/starford/projlog/internal/models"
)

// Sort orders projects in place by, in priority:
//
//  1. status ascending ("doing" sorts before "done" because it is
//     alphabetically smaller, which is the grouping the page wants)
//  2. finished, newest first
//  3. modified, newest first
//  4. started, newest first
//  5. name ascending
//
// For every key an absent value sorts after a present one. The sort is
// stable, so records equal on every key keep their discovery order.
func Sort(projects []models.Project) {
	slices.SortStableFunc(projects, Compare)
}

// Compare is the comparison used by Sort.
func Compare(a, b models.Project) int {
	if c := cmp.Compare(a.Status, b.Status); c != 0 {
		return c
	}
	if c := newestFirst(a.Finished, b.Finished); c != 0 {
		return c
	}
	if c := newestFirst(a.Modified, b.Modified); c != 0 {
		return c
	}
	if c := newestFirst(a.Started, b.Started); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func newestFirst(a, b models.Timestamp) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return b.Compare(a)
}
