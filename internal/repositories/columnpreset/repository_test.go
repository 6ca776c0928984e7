package columnpreset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
)

func getTestLogger() ectologger.Logger {
	zapLogger, _ := zap.NewDevelopment()
	return zapadapter.NewZapEctoLogger(zapLogger, nil)
}

func getTestDB(t *testing.T) database.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbUser := os.Getenv("DB_USER_NAME")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fmr"
	}

	dsn := "host=" + dbHost + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	return database.NewDatabaseInstance(db, getTestLogger())
}

func boolPtr(b bool) *bool {
	return &b
}

// stubDB fails SelectContext with a fixed error and rejects everything else.
type stubDB struct {
	selectErr error
}

func (s *stubDB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return s.selectErr
}

func (s *stubDB) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) Close() error { return nil }

func (s *stubDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return errors.New("not implemented")
}

func (s *stubDB) QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row {
	return nil
}

func (s *stubDB) PingContext(ctx context.Context) error { return nil }

func (s *stubDB) SetConnMaxLifetime(d time.Duration) {}

func (s *stubDB) SetMaxIdleConns(n int) {}

func (s *stubDB) SetMaxOpenConns(n int) {}

func (s *stubDB) Stats() sql.DBStats { return sql.DBStats{} }

func (s *stubDB) GetTx(ctx context.Context, opts *sql.TxOptions) (context.Context, database.Tx, error) {
	return ctx, nil, errors.New("not implemented")
}

func TestColumnPresetRepository_ListMissingTable(t *testing.T) {
	repo := NewRepository(&stubDB{selectErr: &pq.Error{Code: "42P01"}}, getTestLogger())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.NotNil(t, list.Presets)
	assert.Empty(t, list.Presets)
}

func TestColumnPresetRepository_ListOtherErrorsSurface(t *testing.T) {
	repo := NewRepository(&stubDB{selectErr: &pq.Error{Code: "42703"}}, getTestLogger())

	_, err := repo.List(context.Background())
	require.Error(t, err)
}

func TestColumnPresetRepository_DefaultExclusivity(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	logger := getTestLogger()
	repo := NewRepository(db, logger)
	ctx := context.Background()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	first, err := repo.Create(ctx, models.CreateColumnPresetRequest{
		Name:      "triage-" + suffix,
		Columns:   []string{"title", "status", "creationDate"},
		IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, []string{"title", "status", "creationDate"}, first.Columns.Data)

	// Creating a second default demotes the first.
	second, err := repo.Create(ctx, models.CreateColumnPresetRequest{
		Name:      "supply-" + suffix,
		Columns:   []string{"title", "poNumber", "supplyComments"},
		IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	firstAgain, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, firstAgain.IsDefault)

	// Promoting via update demotes the current default too.
	promoted, err := repo.Update(ctx, first.ID, models.UpdateColumnPresetRequest{IsDefault: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	secondAgain, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, secondAgain.IsDefault)

	// The whole list holds at most one default.
	list, err := repo.List(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, preset := range list.Presets {
		if preset.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, second.ID))
}

func TestColumnPresetRepository_EmptyPatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	repo := NewRepository(db, getTestLogger())

	_, err := repo.Update(context.Background(), 1, models.UpdateColumnPresetRequest{})
	require.Error(t, err)
}
