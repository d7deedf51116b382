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
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	name := strings.SplitN(email, "@", 2)[0]

	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, name, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestMeetup(t *testing.T, db DBLike, ownerID uuid.UUID, title string, startsAt time.Time) uuid.UUID {
	t.Helper()

	meetupID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO meetups (id, owner_id, title, description, location, starts_at) VALUES ($1, $2, $3, $4, $5, $6)",
		meetupID, ownerID, title, "An evening of talks and pizza", "Community Hall", startsAt)
	require.NoError(t, err)

	return meetupID
}

func CreateTestSubscription(t *testing.T, db DBLike, userID, meetupID uuid.UUID, startsAt time.Time) uuid.UUID {
	t.Helper()

	subID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO subscriptions (id, user_id, meetup_id, starts_at) VALUES ($1, $2, $3, $4)",
		subID, userID, meetupID, startsAt)
	require.NoError(t, err)

	return subID
}

func CountSubscriptions(t *testing.T, db DBLike, meetupID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM subscriptions WHERE meetup_id = $1", meetupID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountNotificationJobs(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE status = $1", status).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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

	return nil
}
