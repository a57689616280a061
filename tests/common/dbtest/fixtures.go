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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, display_name, location, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, passwordHash, strings.Split(email, "@")[0], "Downtown", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

type ListingFixture struct {
	OwnerID   uuid.UUID
	Title     string
	Category  string
	CreatedAt time.Time
	Expiry    time.Time
	ClaimedBy *uuid.UUID
}

// CreateTestListing inserts a listing row directly, bypassing lead time
// validation so tests can seed expired or already claimed listings.
func CreateTestListing(t *testing.T, db DBLike, f ListingFixture) uuid.UUID {
	t.Helper()

	if f.Title == "" {
		f.Title = "Test listing"
	}
	if f.Category == "" {
		f.Category = "vegetables"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC().Add(-time.Minute)
	}
	if f.Expiry.IsZero() {
		f.Expiry = f.CreatedAt.Add(3 * time.Hour)
	}

	state := "open"
	var claimedAt *time.Time
	if f.ClaimedBy != nil {
		state = "claimed"
		at := f.CreatedAt.Add(time.Second)
		claimedAt = &at
	}

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO listings
		(id, owner_id, title, description, category, quantity, location, expiry_time, created_at, claim_state, claimed_by, claimed_at)
		VALUES ($1, $2, $3, 'seeded listing', $4, '1 box', 'Main St', $5, $6, $7, $8, $9)`,
		id, f.OwnerID, f.Title, f.Category, f.Expiry, f.CreatedAt, state, f.ClaimedBy, claimedAt)
	require.NoError(t, err)

	if f.ClaimedBy != nil {
		_, err = db.Exec(ctx, "INSERT INTO claim_records (listing_id, claimant_id, claimed_at) VALUES ($1, $2, $3)",
			id, *f.ClaimedBy, *claimedAt)
		require.NoError(t, err)
	}

	return id
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
		truncateSQL.Store(buildTruncateSQL(ctx, pool))
	})

	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, stmt)
	return err
}

func buildTruncateSQL(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'
	    AND tablename NOT IN ('schema_migrations')`)
	if err != nil {
		return ""
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return ""
		}
		tables = append(tables, name)
	}
	if rows.Err() != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	// claim_records rejects DELETE via trigger but TRUNCATE does not fire row triggers
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
}
