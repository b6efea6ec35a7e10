package models

// Column headers of the two flat files. They are part of the on-disk format.
const (
	HeaderDate         = "Date"
	HeaderExpenseName  = "Expense_name"
	HeaderCategory     = "Expense_category"
	HeaderExpenseCost  = "Expense_cost"
	HeaderCategoryName = "Category_name"
)

// Bucket labels used by the summaries.
const (
	CategoryUncategorized = "Uncategorized"
	MonthUnknown          = "Unknown"
)
