package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api"
	"github.com/Eronmosele95/electrical-dashboard/internal/config"
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
	"github.com/Eronmosele95/electrical-dashboard/internal/testutil"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	store := storage.NewMemStore()

	return api.NewRouter(api.Deps{
		Logger:  zap.NewNop(),
		Config:  cfg,
		History: history.NewStore(store, cfg.History.MaxEntries, zap.NewNop()),
		Theme:   theme.NewManager(store),
		Catalog: rates.Builtin(),
	})
}

func TestHealth(t *testing.T) {
	router := newRouter(t)

	rr := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/health", nil), router)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	router := newRouter(t)

	// Drive one calculation through so the counters have been touched.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/calculate",
		map[string]any{"voltage": 480, "current": 100, "phase": 3})
	rr := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	rr = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/metrics", nil), router)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "dashboard_calculations_total")
	assert.Contains(t, body, "dashboard_http_request_duration_seconds")
}

func TestUnknownRoute(t *testing.T) {
	router := newRouter(t)

	rr := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil), router)
	testutil.CheckResponseCode(t, http.StatusNotFound, rr.Code)
}
