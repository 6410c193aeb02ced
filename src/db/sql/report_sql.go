package sql

import (
	"context"
	"strings"
	"time"

	"saldogo-server/src/models"
	"saldogo-server/src/report"
)

// Narrow projections feeding the aggregation engine. Amounts come back as
// text so the engine owns all numeric parsing.

func (s *Store) DashboardRows(ctx context.Context, start, end models.Date) ([]report.TransactionRow, error) {
	b := &condBuilder{}
	if !start.IsZero() {
		b.add("transaction_date >= $%d", start.Time)
	}
	if !end.IsZero() {
		b.add("transaction_date <= $%d", end.Time)
	}
	query := "SELECT type, amount::text, transaction_date FROM transactions"
	if len(b.frags) > 0 {
		query += " WHERE " + strings.Join(b.frags, " AND ")
	}
	return s.transactionRows(ctx, query, b.args...)
}

func (s *Store) MonthRows(ctx context.Context, transactionType string) ([]report.TransactionRow, error) {
	query := "SELECT type, amount::text, transaction_date FROM transactions"
	args := []any{}
	if transactionType != "" {
		query += " WHERE type = $1"
		args = append(args, transactionType)
	}
	return s.transactionRows(ctx, query, args...)
}

func (s *Store) AccountTransactionRows(ctx context.Context, accountID string) ([]report.TransactionRow, error) {
	query := "SELECT type, amount::text, transaction_date FROM transactions WHERE account_id = $1"
	return s.transactionRows(ctx, query, accountID)
}

func (s *Store) transactionRows(ctx context.Context, query string, args ...any) ([]report.TransactionRow, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.TransactionRow, 0)
	for rows.Next() {
		var r report.TransactionRow
		var date time.Time
		if err := rows.Scan(&r.Type, &r.Amount, &date); err != nil {
			return nil, err
		}
		r.Date = models.NewDate(date.Year(), int(date.Month()), date.Day())
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) CategoryRows(ctx context.Context, transactionType string, start, end models.Date) ([]report.CategoryRow, error) {
	b := &condBuilder{}
	if transactionType != "" {
		b.add("t.type = $%d", transactionType)
	}
	if !start.IsZero() {
		b.add("t.transaction_date >= $%d", start.Time)
	}
	if !end.IsZero() {
		b.add("t.transaction_date <= $%d", end.Time)
	}
	query := `
		SELECT t.amount::text, c.id::text, c.name, c.icon, c.color
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id`
	if len(b.frags) > 0 {
		query += " WHERE " + strings.Join(b.frags, " AND ")
	}

	rows, err := s.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.CategoryRow, 0)
	for rows.Next() {
		var r report.CategoryRow
		var cID, cName, cIcon, cColor *string
		if err := rows.Scan(&r.Amount, &cID, &cName, &cIcon, &cColor); err != nil {
			return nil, err
		}
		if cID != nil {
			r.Category = &models.CategoryRef{ID: *cID, Name: deref(cName), Icon: deref(cIcon), Color: deref(cColor)}
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) AccountBalanceRows(ctx context.Context) ([]report.AccountRow, error) {
	rows, err := s.pool.Query(ctx, "SELECT balance::text, is_active FROM accounts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.AccountRow, 0)
	for rows.Next() {
		var r report.AccountRow
		if err := rows.Scan(&r.Balance, &r.IsActive); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) BudgetExpenseRows(ctx context.Context, categoryID string, start, end models.Date) ([]report.ExpenseRow, error) {
	query := `
		SELECT amount::text FROM transactions
		WHERE category_id = $1 AND type = 'expense'
		  AND transaction_date >= $2 AND transaction_date <= $3`
	rows, err := s.pool.Query(ctx, query, categoryID, start.Time, end.Time)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.ExpenseRow, 0)
	for rows.Next() {
		var r report.ExpenseRow
		if err := rows.Scan(&r.Amount); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
