package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api"
	"github.com/Eronmosele95/electrical-dashboard/internal/config"
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

// newTestRouter wires the full engine against an in-memory store, so every
// test exercises the same middleware and routes production runs.
func newTestRouter(t *testing.T) *gin.Engine {
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

func ptr(v float64) *float64 { return &v }
