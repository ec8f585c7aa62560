package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"foamcli/internal/config"
)

func testApplication(t *testing.T) *Application {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Server.RateLimit.Enabled = false

	app := &Application{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	app.setupRouterWithoutPipeline()
	return app
}

// setupRouterWithoutPipeline mounts only the routes that do not need a
// live database connection.
func (a *Application) setupRouterWithoutPipeline() {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	a.Router = r
	a.createServer()
}

func TestCreateServer_UsesConfiguredPort(t *testing.T) {
	app := testApplication(t)

	assert.Equal(t, ":8080", app.Server.Addr)
	assert.NotNil(t, app.Server.Handler)
}

func TestRouter_HealthEndpoint(t *testing.T) {
	app := testApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
