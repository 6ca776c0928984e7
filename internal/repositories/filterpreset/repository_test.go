package filterpreset

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/jmoiron/sqlx"
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

// captureDB records the last query handed to SelectContext and rejects
// everything else.
type captureDB struct {
	query string
	args  []any
}

func (c *captureDB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	c.query = query
	c.args = args
	return nil
}

func (c *captureDB) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, errors.New("not implemented")
}

func (c *captureDB) Close() error { return nil }

func (c *captureDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, errors.New("not implemented")
}

func (c *captureDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return errors.New("not implemented")
}

func (c *captureDB) QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (c *captureDB) QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row {
	return nil
}

func (c *captureDB) PingContext(ctx context.Context) error { return nil }

func (c *captureDB) SetConnMaxLifetime(d time.Duration) {}

func (c *captureDB) SetMaxIdleConns(n int) {}

func (c *captureDB) SetMaxOpenConns(n int) {}

func (c *captureDB) Stats() sql.DBStats { return sql.DBStats{} }

func (c *captureDB) GetTx(ctx context.Context, opts *sql.TxOptions) (context.Context, database.Tx, error) {
	return ctx, nil, errors.New("not implemented")
}

func TestFilterPresetRepository_ListNewestFirst(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, getTestLogger())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.NotNil(t, list.Presets)

	assert.Contains(t, db.query, "ORDER BY created_at DESC")
	assert.NotContains(t, db.query, "ORDER BY name")
}

func TestFilterPresetRepository_UpdateEmptyPatch(t *testing.T) {
	repo := NewRepository(&captureDB{}, getTestLogger())

	_, err := repo.Update(context.Background(), 1, models.UpdateFilterPresetRequest{})
	require.Error(t, err)
}
