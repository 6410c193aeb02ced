package sql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
)

const accountSelect = `
	SELECT id::text, name, type, balance::text, currency, icon, color, is_active, created_at
	FROM accounts`

func scanAccount(row scanner) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.Icon, &a.Color, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAccounts(ctx context.Context, isActive *bool) ([]models.Account, error) {
	query := accountSelect
	args := []any{}
	if isActive != nil {
		query += " WHERE is_active = $1"
		args = append(args, *isActive)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (s *Store) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx, accountSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	if req.Type == "" {
		req.Type = "checking"
	}
	if req.Balance == "" {
		req.Balance = "0"
	}
	if req.Currency == "" {
		req.Currency = "IDR"
	}
	if req.Icon == "" {
		req.Icon = "💳"
	}
	if req.Color == "" {
		req.Color = "#3B82F6"
	}

	query := `
		INSERT INTO accounts (name, type, balance, currency, icon, color)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		RETURNING id::text, name, type, balance::text, currency, icon, color, is_active, created_at
	`
	a, err := scanAccount(s.pool.QueryRow(ctx, query, req.Name, req.Type, req.Balance, req.Currency, req.Icon, req.Color))
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	b := &condBuilder{}
	if req.Name != nil {
		b.add("name = $%d", *req.Name)
	}
	if req.Type != nil {
		b.add("type = $%d", *req.Type)
	}
	if req.Balance != nil {
		b.add("balance = $%d::numeric", *req.Balance)
	}
	if req.Currency != nil {
		b.add("currency = $%d", *req.Currency)
	}
	if req.Icon != nil {
		b.add("icon = $%d", *req.Icon)
	}
	if req.Color != nil {
		b.add("color = $%d", *req.Color)
	}
	if req.IsActive != nil {
		b.add("is_active = $%d", *req.IsActive)
	}
	if len(b.frags) == 0 {
		return s.GetAccount(ctx, id)
	}

	query := "UPDATE accounts SET " + strings.Join(b.frags, ", ") +
		" WHERE id = $" + itoa(b.next(id)) +
		" RETURNING id::text, name, type, balance::text, currency, icon, color, is_active, created_at"
	a, err := scanAccount(s.pool.QueryRow(ctx, query, b.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) SoftDeleteAccount(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `UPDATE accounts SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
