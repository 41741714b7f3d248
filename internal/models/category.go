package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "EXPENSE"
	CategoryTypeIncome  CategoryType = "INCOME"
)

// ParseCategoryType maps a wire value to a CategoryType. Unknown values map
// to CategoryTypeExpense.
func ParseCategoryType(raw string) CategoryType {
	return parseEnum(raw, CategoryTypeExpense, CategoryTypeExpense, CategoryTypeIncome)
}

// Category represents a transaction category. ParentID is a plain optional
// reference; the tree is not guaranteed to be acyclic.
type Category struct {
	ID          string
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Type        CategoryType
	ParentID    *string
}
