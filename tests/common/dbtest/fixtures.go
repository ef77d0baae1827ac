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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ItemFixture struct {
	Name        string
	Price       string
	Contributed string
	IsPriority  bool
}

// CreateItem inserts an item and returns its id. Amounts are decimal strings.
func CreateItem(t *testing.T, db DBLike, f ItemFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Test item"
	}
	if f.Price == "" {
		f.Price = "100.00"
	}
	if f.Contributed == "" {
		f.Contributed = "0"
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO items (name, price, contributed_amount, is_priority) VALUES ($1, $2::numeric, $3::numeric, $4) RETURNING id",
		f.Name, f.Price, f.Contributed, f.IsPriority).Scan(&id)
	require.NoError(t, err)

	return id
}

// ContributedAmount reads the running total as text so callers compare exact decimals.
func ContributedAmount(t *testing.T, db DBLike, itemID uuid.UUID) string {
	t.Helper()

	var total string
	err := db.QueryRow(context.Background(),
		"SELECT contributed_amount::text FROM items WHERE id = $1", itemID).Scan(&total)
	require.NoError(t, err)
	return total
}

// ContributionSum returns the count and the sum of stored contributions for an item.
func ContributionSum(t *testing.T, db DBLike, itemID uuid.UUID) (int, string) {
	t.Helper()

	var (
		count int
		sum   string
	)
	err := db.QueryRow(context.Background(),
		"SELECT count(*), COALESCE(sum(amount), 0)::numeric(12,2)::text FROM contributions WHERE item_id = $1", itemID).
		Scan(&count, &sum)
	require.NoError(t, err)
	return count, sum
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
