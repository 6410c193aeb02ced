// Package sql implements the data-access handle over hosted Postgres with
// pgx. All queries are plain SQL; joined selects mirror what the route
// layer returns.
package sql

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"saldogo-server/src/db"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ db.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// condBuilder collects numbered WHERE/SET fragments alongside their args.
type condBuilder struct {
	frags []string
	args  []any
}

// add appends a fragment whose %d verb is replaced with the next arg number.
func (c *condBuilder) add(frag string, val any) {
	c.args = append(c.args, val)
	c.frags = append(c.frags, fmt.Sprintf(frag, len(c.args)))
}

func (c *condBuilder) next(val any) int {
	c.args = append(c.args, val)
	return len(c.args)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
