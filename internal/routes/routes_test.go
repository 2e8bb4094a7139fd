package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/throttle"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:  "3000",
		JWTSecret:   "segredo",
		Env:         "test",
		Timezone:    "America/Sao_Paulo",
		CORSOrigins: "http://localhost:5173,http://localhost:3000",
	}
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	log := zaptest.NewLogger(t)

	r, err := NewEngine(cfg, log)
	require.NoError(t, err)

	RegisterRoutes(r, Deps{
		Config:   cfg,
		Log:      log,
		Throttle: throttle.Noop{},
	})
	return r
}

func TestRegisterRoutes_Table(t *testing.T) {
	r := newRouter(t)

	got := map[string]bool{}
	for _, rt := range r.Routes() {
		got[rt.Method+" "+rt.Path] = true
	}

	want := []string{
		"GET /health",
		"POST /auth/login",
		"POST /auth/cliente/login",
		"GET /auth/me",
		"GET /audit-logs",
	}
	for _, res := range []string{"/clientes", "/barbeiros", "/servicos", "/agendamentos", "/avaliacoes"} {
		want = append(want,
			"POST "+res,
			"GET "+res,
			"GET "+res+"/:id",
			"PUT "+res+"/:id",
			"DELETE "+res+"/:id",
		)
	}
	want = append(want, "GET /agendamentos/cliente/:clienteId")

	for _, w := range want {
		assert.True(t, got[w], "missing route %s", w)
	}
}

func TestRoutes_InvalidIDIsRejectedBeforeDatabase(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/clientes/abc", "/barbeiros/0", "/agendamentos/-1", "/agendamentos/cliente/x"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "invalid_id", path)
	}
}

func TestRoutes_MeRequiresToken(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/agendamentos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
