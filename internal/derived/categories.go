package derived

import (
	"fmt"

	"fintrack/internal/models"
)

// CategoriesByType keeps the categories of one type.
func CategoriesByType(categories []models.Category, t models.CategoryType) []models.Category {
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// TreeIssue is one integrity problem in the category parent references.
type TreeIssue struct {
	CategoryID string
	Problem    string
}

func (i TreeIssue) String() string {
	return fmt.Sprintf("%s: %s", i.CategoryID, i.Problem)
}

const (
	ProblemMissingParent = "parent not found"
	ProblemCycle         = "parent chain forms a cycle"
)

// ValidateCategoryTree reports categories whose parent is missing from the
// list and categories that sit on a parent cycle. The API does not enforce
// either, so callers run this explicitly when they need a well-formed tree.
func ValidateCategoryTree(categories []models.Category) []TreeIssue {
	parents := make(map[string]*string, len(categories))
	for i := range categories {
		parents[categories[i].ID] = categories[i].ParentID
	}

	var issues []TreeIssue
	onCycle := make(map[string]bool)
	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		if _, ok := parents[*c.ParentID]; !ok {
			issues = append(issues, TreeIssue{CategoryID: c.ID, Problem: ProblemMissingParent})
			continue
		}
		if onCycle[c.ID] {
			issues = append(issues, TreeIssue{CategoryID: c.ID, Problem: ProblemCycle})
			continue
		}
		// Returning to c.ID means c is on the cycle, not just leading into it.
		seen := map[string]bool{c.ID: true}
		for cur := c.ParentID; cur != nil; cur = parents[*cur] {
			if *cur == c.ID {
				for id := range seen {
					onCycle[id] = true
				}
				issues = append(issues, TreeIssue{CategoryID: c.ID, Problem: ProblemCycle})
				break
			}
			if seen[*cur] {
				break
			}
			seen[*cur] = true
		}
	}
	return issues
}
