package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rule-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/rule-hunter/internal/planner"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesYAML = `
name: library
rules:
  - id: public-types
    target: type
    attrib: public
  - id: public-api
    target: method
    attrib: public and type.public
`

const catalogYAML = `
name: app
types:
  - fullName: App.Api
    visibility: public
    members:
      - name: Get
        kind: method
        visibility: public
      - name: helper
        kind: method
`

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	rules, err := skiprule.Parse([]byte(rulesYAML))
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewRuleRouter(e, in_mem.NewStore(), WithPlanner(planner.New(rules, 8))).Bind()
	return e
}

func do(e *echo.Echo, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestEvaluateHandler(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult bool
		wantErr    string
		wantPos    *float64
	}{
		{
			name:       "true",
			body:       `{"expression": "A and !B", "atoms": {"A": true, "B": false}}`,
			wantStatus: http.StatusOK,
			wantResult: true,
		},
		{
			name:       "flat fold",
			body:       `{"expression": "A or B and C", "atoms": {"A": true, "B": false, "C": false}}`,
			wantStatus: http.StatusOK,
			wantResult: false,
		},
		{
			name:       "unknown atom",
			body:       `{"expression": "A or X", "atoms": {"A": true}}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid expression: unrecognized value in expression: X",
		},
		{
			name:       "syntax error carries position",
			body:       `{"expression": "A B", "atoms": {"A": true, "B": true}}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "unexpected token 'B' at position 2",
			wantPos:    func() *float64 { p := 2.0; return &p }(),
		},
		{
			name:       "missing expression",
			body:       `{"atoms": {}}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "expression is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/evaluate", echo.MIMEApplicationJSON, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			out := decode(t, rec)
			if tt.wantErr != "" {
				assert.Contains(t, out["error"], tt.wantErr)
				if tt.wantPos != nil {
					assert.Equal(t, *tt.wantPos, out["position"])
				}
				return
			}
			assert.Equal(t, tt.wantResult, out["result"])
		})
	}
}

func TestValidateRulesHandler(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/rules/validate", "application/x-yaml", rulesYAML)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, "library", out["name"])
	assert.Equal(t, 2.0, out["rules"])

	rec = do(e, http.MethodPost, "/rules/validate", "application/x-yaml", "rules:\n  - id: a\n    target: method\n    attrib: public and (\n")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "unexpected end of expression")

	rec = do(e, http.MethodPost, "/rules/validate", "application/x-yaml", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogPlanFlow(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/catalogs/app/plan", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/catalogs", "application/x-yaml", catalogYAML)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, "app", out["name"])
	assert.Equal(t, 1.0, out["types"])

	rec = do(e, http.MethodGet, "/catalogs/app/plan", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var plan planner.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "app", plan.Catalog)
	assert.Equal(t, 2, plan.Kept)
	assert.Equal(t, 1, plan.Renamed)
	require.Len(t, plan.Entries, 3)
	assert.Equal(t, "App.Api::helper", plan.Entries[2].FullName)
	assert.Len(t, plan.Entries[2].NewName, 9)
}

func TestSaveCatalogHandler_Invalid(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/catalogs", "application/x-yaml", "types: []")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "catalog name is required")
}

func TestNewRuleRouter_DefaultPlannerRenamesEverything(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewRuleRouter(e, in_mem.NewStore()).Bind()

	rec := do(e, http.MethodPost, "/catalogs", "application/x-yaml", catalogYAML)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/catalogs/app/plan", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var plan planner.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, 0, plan.Kept)
	assert.Equal(t, 3, plan.Renamed)
}

func TestCatalogPlanFlow_EmptyCatalog(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/catalogs", "application/x-yaml", "name: empty\n")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/catalogs/empty/plan", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
