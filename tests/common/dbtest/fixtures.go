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

	"vinyl-record-house/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn, so fixtures can seed inside a test transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword is the plain password of every user created by CreateTestUser.
const TestPassword = "password123"

const (
	SeedArtist = "Miles Davis"
	SeedGenre  = "Jazz"
	SeedLabel  = "Columbia"
)

var (
	hashOnce     sync.Once
	passwordHash string
	hashErr      error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		passwordHash, hashErr = password.HashPassword(TestPassword)
	})
	require.NoError(t, hashErr)
	return passwordHash
}

func CreateTestUser(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
		return userID
	}

	_, err = db.Exec(ctx, "INSERT INTO user_profiles (user_id, first_name, last_name) VALUES ($1, 'Test', 'Customer')", userID)
	require.NoError(t, err)

	return userID
}

type RecordSeed struct {
	Title     string
	Price     int64
	Stock     int
	Available bool
}

// CreateTestRecord inserts a record by the seeded artist, genre and label.
func CreateTestRecord(t *testing.T, db Conn, seed RecordSeed) uuid.UUID {
	t.Helper()

	recordID := uuid.New()
	ctx := context.Background()
	slug := strings.ToLower(strings.ReplaceAll(seed.Title, " ", "-")) + "-" + recordID.String()[:8]

	_, err := db.Exec(ctx, `
		INSERT INTO vinyl_records (id, title, slug, artist_id, genre_id, label_id, release_year, price, stock_quantity, is_available)
		VALUES ($1, $2, $3,
		    (SELECT id FROM artists WHERE name = $4),
		    (SELECT id FROM genres WHERE name = $5),
		    (SELECT id FROM labels WHERE name = $6),
		    1959, $7, $8, $9)`,
		recordID, seed.Title, slug, SeedArtist, SeedGenre, SeedLabel, seed.Price, seed.Stock, seed.Available)
	require.NoError(t, err)

	return recordID
}

func RecordStock(t *testing.T, db Conn, recordID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock_quantity FROM vinyl_records WHERE id = $1", recordID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// UpdateRecord edits a catalog record the way a staff member would in the admin.
func UpdateRecord(t *testing.T, db Conn, recordID uuid.UUID, title string, price int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE vinyl_records SET title = $2, price = $3, updated_at = NOW() WHERE id = $1", recordID, title, price)
	require.NoError(t, err)
}

func DeleteRecord(t *testing.T, db Conn, recordID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "DELETE FROM vinyl_records WHERE id = $1", recordID)
	require.NoError(t, err)
}

func OrderStatus(t *testing.T, db Conn, orderID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM orders WHERE order_id = $1", orderID).Scan(&status)
	require.NoError(t, err)
	return status
}

// SetOrderStatus moves an order directly, bypassing the transition rules.
func SetOrderStatus(t *testing.T, db Conn, orderID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE orders SET status = $2, updated_at = NOW() WHERE order_id = $1", orderID, status)
	require.NoError(t, err)
}

func CountNotificationJobs(t *testing.T, db Conn, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO artists (name, artist_type) VALUES
		    ('Miles Davis', 'solo'),
		    ('John Coltrane', 'solo')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO genres (name) VALUES ('Jazz'), ('Rock')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO labels (name) VALUES ('Columbia'), ('Blue Note')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('goose_db_version')`)
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
