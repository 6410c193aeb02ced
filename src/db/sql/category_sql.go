package sql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
)

const categorySelect = `
	SELECT id::text, name, type, icon, color, created_at
	FROM categories`

func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Icon, &c.Color, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, categoryType string) ([]models.Category, error) {
	query := categorySelect
	args := []any{}
	if categoryType != "" {
		query += " WHERE type = $1"
		args = append(args, categoryType)
	}
	query += " ORDER BY name ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	c, err := scanCategory(s.pool.QueryRow(ctx, categorySelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if req.Icon == "" {
		req.Icon = "📝"
	}
	if req.Color == "" {
		req.Color = "#6B7280"
	}

	query := `
		INSERT INTO categories (name, type, icon, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, name, type, icon, color, created_at
	`
	c, err := scanCategory(s.pool.QueryRow(ctx, query, req.Name, req.Type, req.Icon, req.Color))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	b := &condBuilder{}
	if req.Name != nil {
		b.add("name = $%d", *req.Name)
	}
	if req.Type != nil {
		b.add("type = $%d", *req.Type)
	}
	if req.Icon != nil {
		b.add("icon = $%d", *req.Icon)
	}
	if req.Color != nil {
		b.add("color = $%d", *req.Color)
	}
	if len(b.frags) == 0 {
		return s.GetCategory(ctx, id)
	}

	query := "UPDATE categories SET " + strings.Join(b.frags, ", ") +
		" WHERE id = $" + itoa(b.next(id)) +
		" RETURNING id::text, name, type, icon, color, created_at"
	c, err := scanCategory(s.pool.QueryRow(ctx, query, b.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
