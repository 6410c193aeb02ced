// Package report folds transaction rows into the summary views served by
// the dashboard and report routes. Every function here is pure: rows in,
// fresh structs out, no I/O and no mutation of the input slices.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"saldogo-server/src/models"
)

// DefaultTrendMonths is how many trailing months the monthly trend keeps
// when the caller does not ask for a specific window.
const DefaultTrendMonths = 12

// Defaults used when a transaction has no category attached.
const (
	UncategorizedID   = "uncategorized"
	UncategorizedName = "Uncategorized"
	DefaultIcon       = "📝"
	DefaultColor      = "#6B7280"
)

// TransactionRow is the narrow (type, amount, date) projection the engine
// consumes. Amounts arrive as decimal strings exactly as stored.
type TransactionRow struct {
	Type   string
	Amount string
	Date   models.Date
}

// CategoryRow carries an amount plus the joined category, if any.
type CategoryRow struct {
	Amount   string
	Category *models.CategoryRef
}

// AccountRow carries an account balance and its active flag.
type AccountRow struct {
	Balance  string
	IsActive bool
}

// ExpenseRow is a bare amount, pre-filtered to one budget's category and window.
type ExpenseRow struct {
	Amount string
}

// parseAmount is the single gate between stored decimal strings and
// arithmetic. A malformed amount aborts the whole computation instead of
// being coerced to zero.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Dashboard sums the given transactions into income/expense/net totals and
// adds the balances of active accounts. Inactive accounts are excluded from
// the balance; transfers count toward transaction_count only.
func Dashboard(txns []TransactionRow, accounts []AccountRow) (models.DashboardSummary, error) {
	var summary models.DashboardSummary
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		amount, err := parseAmount(t.Amount)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(amount)
		}
	}
	balance := decimal.Zero
	for _, a := range accounts {
		if !a.IsActive {
			continue
		}
		b, err := parseAmount(a.Balance)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		balance = balance.Add(b)
	}
	summary.TotalIncome = income
	summary.TotalExpense = expense
	summary.NetIncome = income.Sub(expense)
	summary.TotalBalance = balance
	summary.TransactionCount = len(txns)
	return summary, nil
}

// ByCategory groups rows by category id, using the uncategorized sentinel
// when no category is attached. Groups come back sorted by total descending;
// equal totals keep first-encounter order.
func ByCategory(rows []CategoryRow) ([]models.CategoryGroup, error) {
	groups := make(map[string]*models.CategoryGroup)
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		id := UncategorizedID
		name := UncategorizedName
		icon := DefaultIcon
		color := DefaultColor
		if row.Category != nil {
			id = row.Category.ID
			name = row.Category.Name
			if row.Category.Icon != "" {
				icon = row.Category.Icon
			}
			if row.Category.Color != "" {
				color = row.Category.Color
			}
		}
		amount, err := parseAmount(row.Amount)
		if err != nil {
			return nil, err
		}
		g, ok := groups[id]
		if !ok {
			g = &models.CategoryGroup{
				CategoryID:   id,
				CategoryName: name,
				Icon:         icon,
				Color:        color,
				Total:        decimal.Zero,
			}
			groups[id] = g
			order = append(order, id)
		}
		g.Total = g.Total.Add(amount)
		g.Count++
	}

	result := make([]models.CategoryGroup, 0, len(order))
	for _, id := range order {
		result = append(result, *groups[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result, nil
}

// ByMonth buckets rows into YYYY-MM groups with income/expense/net sums,
// sorted ascending by month and truncated to the most recent `months`
// buckets. months <= 0 falls back to DefaultTrendMonths.
func ByMonth(rows []TransactionRow, months int) ([]models.MonthGroup, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	groups := make(map[string]*models.MonthGroup)
	for _, row := range rows {
		key := row.Date.MonthKey()
		g, ok := groups[key]
		if !ok {
			g = &models.MonthGroup{
				Month:   key,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			groups[key] = g
		}
		amount, err := parseAmount(row.Amount)
		if err != nil {
			return nil, err
		}
		switch row.Type {
		case models.TransactionTypeIncome:
			g.Income = g.Income.Add(amount)
		case models.TransactionTypeExpense:
			g.Expense = g.Expense.Add(amount)
		}
		g.Net = g.Income.Sub(g.Expense)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > months {
		keys = keys[len(keys)-months:]
	}

	result := make([]models.MonthGroup, 0, len(keys))
	for _, key := range keys {
		result = append(result, *groups[key])
	}
	return result, nil
}

// BudgetSpend totals the given expense rows against a budget amount.
// Remaining goes negative on overspend. Percentage is rounded to two
// decimal places; a zero budget amount yields percentage 0 by definition.
func BudgetSpend(budgetAmount string, rows []ExpenseRow) (models.BudgetSpend, error) {
	amount, err := parseAmount(budgetAmount)
	if err != nil {
		return models.BudgetSpend{}, err
	}
	spent := decimal.Zero
	for _, row := range rows {
		a, err := parseAmount(row.Amount)
		if err != nil {
			return models.BudgetSpend{}, err
		}
		spent = spent.Add(a)
	}
	percentage := decimal.Zero
	if !amount.IsZero() {
		percentage = spent.Div(amount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return models.BudgetSpend{
		Spent:      spent,
		Remaining:  amount.Sub(spent),
		Percentage: percentage,
	}, nil
}

// AccountSummary rolls up one account's transactions for the account
// detail view.
func AccountSummary(txns []TransactionRow) (models.AccountSummary, error) {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		amount, err := parseAmount(t.Amount)
		if err != nil {
			return models.AccountSummary{}, err
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(amount)
		}
	}
	return models.AccountSummary{
		TotalIncome:      income,
		TotalExpense:     expense,
		TransactionCount: len(txns),
	}, nil
}
