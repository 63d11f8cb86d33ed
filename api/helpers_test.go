package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/emp-classrooms-backend/database"
	"github.com/rpupo63/emp-classrooms-backend/testutil"
)

func doRaw(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	return database.New(testutil.SetupTestDB(t))
}
