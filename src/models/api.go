package models

import "github.com/shopspring/decimal"

// Response envelopes shared by the handlers and the client SDK.

type TransactionList struct {
	Data   []Transaction `json:"data"`
	Count  int           `json:"count"`
	Limit  *int          `json:"limit"`
	Offset *int          `json:"offset"`
}

type Period struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type DashboardSummary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	NetIncome        decimal.Decimal `json:"net_income"`
	TotalBalance     decimal.Decimal `json:"total_balance"`
	TransactionCount int             `json:"transaction_count"`
}

type DashboardResponse struct {
	DashboardSummary
	Period Period `json:"period"`
}

type CategoryGroup struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Icon         string          `json:"icon"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

type MonthGroup struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// AccountSummary is the per-account transaction rollup attached to
// GET /api/accounts/{id}.
type AccountSummary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	TransactionCount int             `json:"transaction_count"`
}

type AccountDetail struct {
	Account
	Summary AccountSummary `json:"summary"`
}

// BudgetSpend is the computed spend attached to GET /api/budgets/{id}.
// Remaining may go negative on overspend; Percentage is 0 when the budget
// amount is 0 rather than a division error.
type BudgetSpend struct {
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

type BudgetDetail struct {
	Budget
	BudgetSpend
}

// Profile is the static application metadata served at /api/profile.
type Profile struct {
	AppName     string            `json:"appName"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Author      string            `json:"author"`
	Features    []string          `json:"features"`
	Endpoints   map[string]string `json:"endpoints"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
