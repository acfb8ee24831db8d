package sqlrepo_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopservice/internal/infrastructure/db/sqlrepo"
)

type backend struct {
	name string
	db   *sql.DB
}

// backends returns a fresh SQLite database and, when TEST_DATABASE_URL is
// set, an emptied Postgres database.
func backends(t *testing.T) []backend {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "shop.db")
	lite, err := sqlrepo.Open(ctx, sqlrepo.DriverSQLite, path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = lite.Close() })

	res := []backend{{name: sqlrepo.DriverSQLite, db: lite}}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return res
	}
	pg, err := sqlrepo.Open(ctx, sqlrepo.DriverPostgres, dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	_, err = pg.ExecContext(ctx, `TRUNCATE TABLE orders, deliveries, members, teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return append(res, backend{name: sqlrepo.DriverPostgres, db: pg})
}

func eachBackend(t *testing.T, fn func(t *testing.T, db *sql.DB)) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.db)
		})
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := sqlrepo.Open(context.Background(), "mysql", "x", zap.NewNop())
	require.Error(t, err)
}
