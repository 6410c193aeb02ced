package sql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
)

const transactionSelect = `
	SELECT t.id::text, t.type, t.amount::text, t.account_id::text, t.to_account_id::text, t.category_id::text,
	       t.transaction_date, t.description, t.notes, t.tags, t.created_at,
	       a.id::text, a.name, a.type, a.icon, a.color,
	       c.id::text, c.name, c.type, c.icon, c.color,
	       ta.id::text, ta.name
	FROM transactions t
	JOIN accounts a ON t.account_id = a.id
	LEFT JOIN categories c ON t.category_id = c.id
	LEFT JOIN accounts ta ON t.to_account_id = ta.id`

func scanTransaction(row scanner) (*models.Transaction, error) {
	var t models.Transaction
	var txnDate time.Time
	var account models.AccountRef
	var cID, cName, cType, cIcon, cColor *string
	var taID, taName *string

	err := row.Scan(
		&t.ID, &t.Type, &t.Amount, &t.AccountID, &t.ToAccountID, &t.CategoryID,
		&txnDate, &t.Description, &t.Notes, &t.Tags, &t.CreatedAt,
		&account.ID, &account.Name, &account.Type, &account.Icon, &account.Color,
		&cID, &cName, &cType, &cIcon, &cColor,
		&taID, &taName,
	)
	if err != nil {
		return nil, err
	}

	t.TransactionDate = models.NewDate(txnDate.Year(), int(txnDate.Month()), txnDate.Day())
	t.Account = &account
	if cID != nil {
		t.Category = &models.CategoryRef{ID: *cID, Name: deref(cName), Type: deref(cType), Icon: deref(cIcon), Color: deref(cColor)}
	}
	if taID != nil {
		t.ToAccount = &models.AccountRef{ID: *taID, Name: deref(taName)}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func transactionConds(f db.TransactionFilter) *condBuilder {
	b := &condBuilder{}
	if f.Type != "" {
		b.add("t.type = $%d", f.Type)
	}
	if f.AccountID != "" {
		b.add("t.account_id = $%d", f.AccountID)
	}
	if f.CategoryID != "" {
		b.add("t.category_id = $%d", f.CategoryID)
	}
	if !f.StartDate.IsZero() {
		b.add("t.transaction_date >= $%d", f.StartDate.Time)
	}
	if !f.EndDate.IsZero() {
		b.add("t.transaction_date <= $%d", f.EndDate.Time)
	}
	return b
}

func (s *Store) ListTransactions(ctx context.Context, f db.TransactionFilter) ([]models.Transaction, int, error) {
	b := transactionConds(f)
	where := ""
	if len(b.frags) > 0 {
		where = " WHERE " + strings.Join(b.frags, " AND ")
	}

	var count int
	countQuery := "SELECT COUNT(*) FROM transactions t" + where
	if err := s.pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := transactionSelect + where + " ORDER BY t.transaction_date DESC, t.created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT $" + itoa(b.next(f.Limit))
	}
	if f.Offset > 0 {
		query += " OFFSET $" + itoa(b.next(f.Offset))
	}

	rows, err := s.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, count, rows.Err()
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.pool.QueryRow(ctx, transactionSelect+" WHERE t.id = $1", id)
	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	date := req.TransactionDate
	if date.IsZero() {
		date = models.Today()
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `
		INSERT INTO transactions (type, amount, account_id, to_account_id, category_id, transaction_date, description, notes, tags)
		VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text
	`
	var id string
	err := s.pool.QueryRow(ctx, query,
		req.Type, req.Amount, req.AccountID, req.ToAccountID, req.CategoryID,
		date.Time, req.Description, req.Notes, tags,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return s.GetTransaction(ctx, id)
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	b := &condBuilder{}
	if req.Type != nil {
		b.add("type = $%d", *req.Type)
	}
	if req.Amount != nil {
		b.add("amount = $%d::numeric", *req.Amount)
	}
	if req.AccountID != nil {
		b.add("account_id = $%d", *req.AccountID)
	}
	if req.ToAccountID != nil {
		b.add("to_account_id = $%d", *req.ToAccountID)
	}
	if req.CategoryID != nil {
		b.add("category_id = $%d", *req.CategoryID)
	}
	if req.TransactionDate != nil {
		b.add("transaction_date = $%d", req.TransactionDate.Time)
	}
	if req.Description != nil {
		b.add("description = $%d", *req.Description)
	}
	if req.Notes != nil {
		b.add("notes = $%d", *req.Notes)
	}
	if req.Tags != nil {
		b.add("tags = $%d", *req.Tags)
	}
	if len(b.frags) == 0 {
		return s.GetTransaction(ctx, id)
	}

	query := "UPDATE transactions SET " + strings.Join(b.frags, ", ") +
		" WHERE id = $" + itoa(b.next(id)) + " RETURNING id::text"
	var updatedID string
	err := s.pool.QueryRow(ctx, query, b.args...).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetTransaction(ctx, updatedID)
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
