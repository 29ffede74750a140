package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"civic"
	"civic/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// setupTestDB starts a throwaway postgres, applies the embedded migrations and
// returns a connected PgSQL along with its teardown.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("civic_test"),
		tcpostgres.WithUsername("civic"),
		tcpostgres.WithPassword("civic"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           "civic",
		Password:           "civic",
		Host:               host,
		Port:               port.Int(),
		Database:           "civic_test",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pg.Ping(ctx))

	goose.SetBaseFS(civic.Migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, pg.DB.(*sql.DB), "migrations"))

	return pg, func() {
		_ = pg.Close()
		_ = container.Terminate(ctx)
	}
}
