package domain

// Category classifies a ledger entry.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategorySalary         Category = "Salary"
	CategoryFreelance      Category = "Freelance"
	CategoryInvestment     Category = "Investment"
	CategoryOther          Category = "Other"

	// CategoryUncategorized is the fallback for entries submitted without a
	// category selection.
	CategoryUncategorized Category = "Uncategorized"
)

// Categories returns the selectable category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOther,
	}
}

var validCategories = func() map[Category]bool {
	m := make(map[Category]bool)
	for _, c := range Categories() {
		m[c] = true
	}
	m[CategoryUncategorized] = true
	return m
}()

// IsValid reports whether the category is part of the fixed set.
func (c Category) IsValid() bool {
	return validCategories[c]
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory maps a raw category string to the fixed set, falling back to
// Uncategorized for empty or unknown values.
func ParseCategory(raw string) Category {
	if raw == "" {
		return CategoryUncategorized
	}

	c := Category(raw)
	if !c.IsValid() {
		return CategoryUncategorized
	}

	return c
}
