package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	assert.NoError(t, err)

	for _, table := range []string{
		"content_snapshot",
		"published_content",
		"review",
		"team_user",
		"analytics_daily",
		"rate_limit",
		"setting",
	} {
		_, err = db.db.ExecContext(context.Background(), "DELETE FROM "+table)
		assert.NoError(t, err)
	}

	return db
}
