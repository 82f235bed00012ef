// Historial de compras de la sesión sobre SQLite en memoria.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/ahinestrog/techstore/internal/cart"
)

const DefaultDSN = ":memory:"

type Repository struct {
	DB *sql.DB
}

// NewRepository abre la base de historial. Con el DSN por defecto (":memory:")
// nada sobrevive al proceso.
func NewRepository(dsn string) (*Repository, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	if dsn != DefaultDSN {
		// _pragma busy_timeout para evitar "database is locked"
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(2 * time.Minute)
	db.SetMaxOpenConns(1)

	r := &Repository{DB: db}
	if err := r.migrate(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS orders(
  id           TEXT PRIMARY KEY,
  created_unix INTEGER NOT NULL,
  total        REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS order_lines(
  order_id   TEXT NOT NULL REFERENCES orders(id),
  product_id TEXT NOT NULL,
  name       TEXT NOT NULL,
  qty        INTEGER NOT NULL,
  unit_price REAL NOT NULL,
  subtotal   REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id);
`
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Close() error { return r.DB.Close() }

func (r *Repository) SaveOrder(ctx context.Context, o *cart.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders(id, created_unix, total) VALUES (?, ?, ?)`,
		o.ID, o.CreatedAt.Unix(), o.Total); err != nil {
		return err
	}
	for _, l := range o.Lines {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO order_lines(order_id, product_id, name, qty, unit_price, subtotal)
VALUES (?, ?, ?, ?, ?, ?)`,
			o.ID, l.ProductID, l.Name, l.Quantity, l.UnitPrice, l.Subtotal); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug().Str("order", o.ID).Float64("total", o.Total).Msg("orden registrada")
	return nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]*cart.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, created_unix, total FROM orders ORDER BY created_unix, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*cart.Order
	for rows.Next() {
		var o cart.Order
		var createdUnix int64
		if err := rows.Scan(&o.ID, &createdUnix, &o.Total); err != nil {
			return nil, err
		}
		o.CreatedAt = time.Unix(createdUnix, 0)
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range out {
		if err := r.loadLines(ctx, o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Repository) loadLines(ctx context.Context, o *cart.Order) error {
	rows, err := r.DB.QueryContext(ctx, `
SELECT product_id, name, qty, unit_price, subtotal
FROM order_lines WHERE order_id=?`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l cart.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return err
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}
