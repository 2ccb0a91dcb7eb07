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

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, displayName, role string, points int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (display_name, role, points) VALUES ($1, $2, $3) RETURNING id",
		displayName, role, points).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestEvent(t *testing.T, db DBLike, title, status string, endsAt *time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO events (title, status, starts_at, ends_at) VALUES ($1, $2, now() - interval '1 hour', $3) RETURNING id",
		title, status, endsAt).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestItem inserts an item available for both pickup and delivery.
// stock -1 means unlimited.
func CreateTestItem(t *testing.T, db DBLike, name string, pointsRequired int64, stock int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO redemption_items (name, points_required, stock_quantity) VALUES ($1, $2, $3) RETURNING id",
		name, pointsRequired, stock).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestPromo inserts an active percent-off promo valid for the surrounding day.
// A nil maxUsage means unlimited.
func CreateTestPromo(t *testing.T, db DBLike, code string, maxUsage *int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO promos (code, title, benefit_type, benefit_value, valid_from, valid_until, max_usage)
		VALUES ($1, $2, 'percent', 10, now() - interval '1 day', now() + interval '1 day', $3)
		RETURNING id`,
		code, "Promo "+code, maxUsage).Scan(&id)
	require.NoError(t, err)
	return id
}

func UserPoints(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var points int64
	err := db.QueryRow(context.Background(), "SELECT points FROM users WHERE id = $1", userID).Scan(&points)
	require.NoError(t, err)
	return points
}

func ItemStock(t *testing.T, db DBLike, itemID uuid.UUID) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(), "SELECT stock_quantity FROM redemption_items WHERE id = $1", itemID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountRows(t *testing.T, db DBLike, table string, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
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
