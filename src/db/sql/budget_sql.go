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

const budgetSelect = `
	SELECT b.id::text, b.category_id::text, b.amount::text, b.start_date, b.end_date, b.created_at,
	       c.id::text, c.name, c.icon, c.color
	FROM budgets b
	LEFT JOIN categories c ON b.category_id = c.id`

func scanBudget(row scanner) (*models.Budget, error) {
	var b models.Budget
	var startDate time.Time
	var endDate *time.Time
	var cID, cName, cIcon, cColor *string

	err := row.Scan(&b.ID, &b.CategoryID, &b.Amount, &startDate, &endDate, &b.CreatedAt,
		&cID, &cName, &cIcon, &cColor)
	if err != nil {
		return nil, err
	}

	b.StartDate = models.NewDate(startDate.Year(), int(startDate.Month()), startDate.Day())
	if endDate != nil {
		d := models.NewDate(endDate.Year(), int(endDate.Month()), endDate.Day())
		b.EndDate = &d
	}
	if cID != nil {
		b.Category = &models.CategoryRef{ID: *cID, Name: deref(cName), Icon: deref(cIcon), Color: deref(cColor)}
	}
	return &b, nil
}

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	rows, err := s.pool.Query(ctx, budgetSelect+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func (s *Store) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	b, err := scanBudget(s.pool.QueryRow(ctx, budgetSelect+" WHERE b.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	var endDate *time.Time
	if req.EndDate != nil {
		endDate = &req.EndDate.Time
	}

	query := `
		INSERT INTO budgets (category_id, amount, start_date, end_date)
		VALUES ($1, $2::numeric, $3, $4)
		RETURNING id::text
	`
	var id string
	err := s.pool.QueryRow(ctx, query, req.CategoryID, req.Amount, req.StartDate.Time, endDate).Scan(&id)
	if err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, id)
}

func (s *Store) UpdateBudget(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	b := &condBuilder{}
	if req.CategoryID != nil {
		b.add("category_id = $%d", *req.CategoryID)
	}
	if req.Amount != nil {
		b.add("amount = $%d::numeric", *req.Amount)
	}
	if req.StartDate != nil {
		b.add("start_date = $%d", req.StartDate.Time)
	}
	if req.EndDate != nil {
		b.add("end_date = $%d", req.EndDate.Time)
	}
	if len(b.frags) == 0 {
		return s.GetBudget(ctx, id)
	}

	query := "UPDATE budgets SET " + strings.Join(b.frags, ", ") +
		" WHERE id = $" + itoa(b.next(id)) + " RETURNING id::text"
	var updatedID string
	err := s.pool.QueryRow(ctx, query, b.args...).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, updatedID)
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
