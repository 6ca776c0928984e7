package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseID(t *testing.T) {
	c := newTestContext("/")
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := ParseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.SetParamValues("not-a-number")
	_, err = ParseID(c, "id")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))

	c.SetParamValues("")
	_, err = ParseID(c, "id")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
}

func TestParseDateParam(t *testing.T) {
	t.Run("missing is nil", func(t *testing.T) {
		c := newTestContext("/reports/export")
		value, err := parseDateParam(c, "startDate")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("RFC 3339", func(t *testing.T) {
		c := newTestContext("/reports/export?startDate=2025-03-01T12:00:00Z")
		value, err := parseDateParam(c, "startDate")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), value.UTC())
	})

	t.Run("plain date", func(t *testing.T) {
		c := newTestContext("/reports/export?endDate=2025-03-31")
		value, err := parseDateParam(c, "endDate")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), value.UTC())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		c := newTestContext("/reports/export?startDate=last-tuesday")
		_, err := parseDateParam(c, "startDate")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})
}
