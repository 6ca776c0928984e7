package contact

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
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

func strPtr(s string) *string {
	return &s
}

func TestContactRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	logger := getTestLogger()
	repo := NewRepository(db, logger)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateContactRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     strPtr("dana.whitfield@example.com"),
		Team:      models.TeamFilius,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.TeamFilius, created.Team)

	// Patch a single field; the rest stays put.
	updated, err := repo.Update(ctx, created.ID, models.UpdateContactRequest{
		WorkNumber: strPtr("555-0142"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkNumber)
	assert.Equal(t, "555-0142", *updated.WorkNumber)
	assert.Equal(t, "Dana", updated.FirstName)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "dana.whitfield@example.com", *updated.Email)

	// Empty patch is rejected.
	_, err = repo.Update(ctx, created.ID, models.UpdateContactRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))

	list, err := repo.List(ctx, 100, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, list.Total, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
}
