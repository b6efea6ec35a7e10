package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed cost of one category.
type CategoryTotal struct {
	Category string `json:"category" yaml:"category"`
	Total    int64  `json:"total" yaml:"total"`
}

// MonthTotal is the summed cost of one YYYY-MM month (or Unknown).
type MonthTotal struct {
	Month string `json:"month" yaml:"month"`
	Total int64  `json:"total" yaml:"total"`
}

// Overview gives count, sum and mean cost over a set of expenses.
type Overview struct {
	Count   int             `json:"count" yaml:"count"`
	Total   int64           `json:"total" yaml:"total"`
	Average decimal.Decimal `json:"average" yaml:"average"`
}
