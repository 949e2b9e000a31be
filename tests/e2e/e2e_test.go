//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dadminete/dbsismovil/internal/config"
	"github.com/Dadminete/dbsismovil/internal/infra"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/router"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, session string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: session})
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c.Value
		}
	}
	return ""
}

// ── Test environment ─────────────────────────────────────────────────────────

type testEnv struct {
	server  *httptest.Server
	db      *gorm.DB
	session string
	caja    *model.Caja
	cliente *model.Cliente
	factura *model.FacturaCliente
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:15-alpine",
		tcPostgres.WithDatabase("dbsismovil_test"),
		tcPostgres.WithUsername("dbsismovil"),
		tcPostgres.WithPassword("dbsismovil"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:            8000,
		Env:             "test",
		DatabaseURL:     pgURL,
		RedisURL:        rdURL,
		SessionSecret:   "e2e-secret",
		SessionDays:     7,
		UploadDir:       t.TempDir(),
		UploadPublicURL: "/uploads",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	env := &testEnv{db: db}
	seed(t, env)

	fotos := infra.NewFotoStorage(cfg.UploadDir, cfg.UploadPublicURL)
	env.server = httptest.NewServer(router.New(cfg, db, rdb, fotos))
	t.Cleanup(env.server.Close)

	// Login once; every protected call rides this cookie.
	resp := do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "1234"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.session = sessionCookie(resp)
	require.NotEmpty(t, env.session)
	resp.Body.Close()

	return env
}

func seed(t *testing.T, env *testEnv) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&model.Usuario{
		ID:           uuid.New(),
		Username:     "admin",
		Nombre:       "Admin E2E",
		PasswordHash: string(hash),
		Activo:       true,
	}).Error)

	env.caja = &model.Caja{
		ID:           uuid.New(),
		Nombre:       "Caja Principal",
		SaldoInicial: decimal.NewFromInt(1000),
		SaldoActual:  decimal.NewFromInt(1000),
		Activa:       true,
	}
	require.NoError(t, env.db.Create(env.caja).Error)

	env.cliente = &model.Cliente{
		ID:     uuid.New(),
		Nombre: "Juana",
		Apellidos: "Pérez",
		Estado: "activo",
	}
	require.NoError(t, env.db.Create(env.cliente).Error)
	require.NoError(t, env.db.Create(&model.Suscripcion{
		ID:        uuid.New(),
		ClienteID: env.cliente.ID,
		Estado:    "activo",
	}).Error)

	env.factura = &model.FacturaCliente{
		ID:           uuid.New(),
		ClienteID:    env.cliente.ID,
		Total:        decimal.NewFromInt(1000),
		Estado:       "pendiente",
		FechaFactura: time.Now(),
	}
	require.NoError(t, env.db.Create(env.factura).Error)
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestE2E(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("rutas protegidas exigen sesion", func(t *testing.T) {
		resp := do(t, env.server, "GET", "/api/stats", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("movimiento efectivo ajusta la caja", func(t *testing.T) {
		resp := do(t, env.server, "POST", "/api/finance/transactions", jsonBody(t, map[string]any{
			"tipo":        "ingreso",
			"monto":       500,
			"metodo":      "efectivo",
			"caja_id":     env.caja.ID.String(),
			"descripcion": "venta e2e",
		}), env.session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = do(t, env.server, "GET", "/api/cajas", nil, env.session)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var cajas []struct {
			ID          string          `json:"id"`
			SaldoActual decimal.Decimal `json:"saldo_actual"`
		}
		decodeJSON(t, resp, &cajas)
		require.Len(t, cajas, 1)
		assert.True(t, cajas[0].SaldoActual.Equal(decimal.NewFromInt(1500)), "saldo: %s", cajas[0].SaldoActual)
	})

	t.Run("pago parcial y luego saldado", func(t *testing.T) {
		resp := do(t, env.server, "POST", "/api/payments", jsonBody(t, map[string]any{
			"factura_id":  env.factura.ID.String(),
			"cliente_id":  env.cliente.ID.String(),
			"monto":       400,
			"metodo_pago": "transferencia",
		}), env.session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var pago struct {
			Success     bool   `json:"success"`
			NuevoEstado string `json:"nuevo_estado"`
		}
		decodeJSON(t, resp, &pago)
		assert.True(t, pago.Success)
		assert.Equal(t, "parcial", pago.NuevoEstado)

		resp = do(t, env.server, "POST", "/api/payments", jsonBody(t, map[string]any{
			"factura_id":  env.factura.ID.String(),
			"cliente_id":  env.cliente.ID.String(),
			"monto":       600,
			"metodo_pago": "efectivo",
			"caja_id":     env.caja.ID.String(),
		}), env.session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeJSON(t, resp, &pago)
		assert.Equal(t, "pagada", pago.NuevoEstado)

		resp = do(t, env.server, "GET", "/api/clients/"+env.cliente.ID.String()+"/invoices", nil, env.session)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var facturas []struct {
			Estado string `json:"estado"`
		}
		decodeJSON(t, resp, &facturas)
		require.Len(t, facturas, 1)
		assert.Equal(t, "pagada", facturas[0].Estado)
	})

	t.Run("cliente activo aparece en el listado", func(t *testing.T) {
		resp := do(t, env.server, "GET", "/api/clients", nil, env.session)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var clientes []struct {
			ID     string `json:"id"`
			Nombre string `json:"nombre"`
		}
		decodeJSON(t, resp, &clientes)
		require.Len(t, clientes, 1)
		assert.Equal(t, env.cliente.ID.String(), clientes[0].ID)
	})

	t.Run("stats responde agregados", func(t *testing.T) {
		resp := do(t, env.server, "GET", "/api/stats", nil, env.session)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var stats struct {
			ActiveClients int64 `json:"activeClients"`
		}
		decodeJSON(t, resp, &stats)
		assert.Equal(t, int64(1), stats.ActiveClients)
	})

	t.Run("logout invalida la cookie en todos lados", func(t *testing.T) {
		resp := do(t, env.server, "POST", "/api/auth/logout", nil, env.session)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		// The signed token is intact but its version is stale now.
		resp = do(t, env.server, "GET", "/api/stats", nil, env.session)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}
