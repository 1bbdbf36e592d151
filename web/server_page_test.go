package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/purchasing/config"
	"github.com/purchasing/database"
	"github.com/purchasing/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	database.DB = dbtest.New(t)
	t.Cleanup(func() { database.DB = nil })

	return NewServer(&config.Config{
		App:     config.AppConfig{Environment: "test", WebDir: "."},
		Catalog: config.CatalogConfig{ConflictRetries: 1},
	})
}

func get(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestQuoteListPage(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, database.SeedData(database.DB))

	status, body := get(t, s, "/")
	require.Equal(t, http.StatusOK, status, body)

	assert.Contains(t, body, "<title>Quotes - Purchasing</title>")
	assert.Contains(t, body, "<td>Gear4music</td>")
	assert.Contains(t, body, "<td>Universal Audio</td>")
	assert.Contains(t, body, "<td>TLM 103</td>")

	// Thomann's TLM 103 at 5% off
	assert.Contains(t, body, "<td>899.00 EUR</td>")
	assert.Contains(t, body, "<td>5%</td>")
	assert.Contains(t, body, "<td>854.05 EUR</td>")

	// Gear4music's SM57 at 10% off
	assert.Contains(t, body, "<td>79.00 GBP</td>")
	assert.Contains(t, body, "<td>71.10 GBP</td>")

	assert.Contains(t, body, "SQL queries</summary>")
	assert.NotContains(t, body, "No quotes recorded yet.")
}

func TestQuoteListPageEmpty(t *testing.T) {
	s := newTestServer(t)

	status, body := get(t, s, "/")
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, "No quotes recorded yet.")
}

func TestErrorPages(t *testing.T) {
	s := newTestServer(t)

	status, body := get(t, s, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "<title>Error - Purchasing</title>")
	assert.Contains(t, body, "404:")

	status, body = get(t, s, "/api/no-such-endpoint")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"error"`)
}
