//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Catalog rows available after SeedReferenceData. Cart and review tests
// reference these products by id.
const (
	ProductMouseID    = int64(100)
	ProductKeyboardID = int64(101)
	ProductHubID      = int64(102)
)

func CreateTestProduct(t *testing.T, db DBLike, id int64, name string, price float64) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, price, status, images) VALUES ($1, $2, $3, 'active', '{}') ON CONFLICT (id) DO NOTHING",
		id, name, price)
	require.NoError(t, err)

	return id
}

func CreateTestCoupon(t *testing.T, db DBLike, id int64, code string, discountPercent, minAmount float64, expiry time.Time) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, discount_percent, min_amount, expiry_date, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (code) DO NOTHING",
		id, code, discountPercent, minAmount, expiry)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name, price, status, images) VALUES
		    (100, 'Wireless Mouse', 19.99, 'active', '{"mouse.jpg"}'),
		    (101, 'Mechanical Keyboard', 89.99, 'active', '{"keyboard.jpg"}'),
		    (102, 'USB-C Hub', 5.50, 'active', '{}')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
