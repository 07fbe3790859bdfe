package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemdex/domain/catalog"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	columns := []string{"Element No", "Element Name", "Symbol", "Category", "Action", "Definition"}
	records := []map[string]string{
		{"Element No": "1", "Element Name": "Research Paradigm", "Symbol": "RP", "Category": "Theory", "Action": "Define", "Definition": "The worldview guiding a study."},
		{"Element No": "7", "Element Name": "Sampling Frame", "Symbol": "SF", "Category": "Method", "Action": "Collect", "Definition": "A list of all 12 units eligible for sampling."},
		{"Element No": "12", "Element Name": "Data Integrity", "Symbol": "DI", "Category": "Ethics", "Action": "Verify", "Definition": "Keeping records accurate."},
	}
	ds := catalog.NewDataset(columns, records)
	return NewServer(ds, catalog.ResolveRoles(ds), gin.TestMode)
}

func doRequest(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["rows"])
}

func TestListElements_RankedSearch(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/elements?q=12")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 2, body.Shown)
	require.Len(t, body.Elements, 2)
	// Exact number match outranks the substring hit inside a definition
	assert.Equal(t, "Data Integrity", body.Elements[0].Name)
	assert.Equal(t, "Sampling Frame", body.Elements[1].Name)
}

func TestListElements_FiltersAndDeepLink(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/elements?category=Theory&el=12")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Shown)
	require.NotNil(t, body.DeepLink)
	assert.Equal(t, "Data Integrity", body.DeepLink.Name)
	assert.Equal(t, "?el=12", body.DeepLink.Link)
}

func TestGetElement(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/elements/7")
	require.Equal(t, http.StatusOK, rec.Code)

	var el elementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &el))
	assert.Equal(t, "Sampling Frame", el.Name)
	assert.Equal(t, "SF", el.Symbol)
	assert.Equal(t, "7", el.Key)
}

func TestGetElement_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/elements/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOverview(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/overview")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile catalog.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 3, profile.TotalRows)
	assert.Equal(t, 3, profile.ShownRows)
}

func TestExportCSV(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "/api/export.csv?category=Ethics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Data Integrity")
}
