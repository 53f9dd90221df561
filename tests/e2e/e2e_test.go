//go:build integration

package e2e

// End-to-end tests for the registration workflow using real Postgres + Redis
// via testcontainers. Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - new tuple → 201 emitido, record persisted, ticket downloadable
//   - identical resubmission → 200 duplicado, same participant ID, one record
//   - differing tuple → second record, distinct ID
//   - invalid fields → 422 with per-field messages, nothing persisted
//   - unknown event namespace → 404

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/config"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/infra"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/model"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/router"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
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
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func formulario(cedula string) map[string]string {
	return map[string]string{
		"cedula":            cedula,
		"nombres":           "Maria Lopez",
		"telefono":          "0998765432",
		"correo":            "maria@example.com",
		"tipoParticipacion": "docente",
	}
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("eventpass_test"),
		tcPostgres.WithUsername("eventpass"),
		tcPostgres.WithPassword("eventpass"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:              8000,
		Env:               "test",
		WorkerPoolSize:    1,
		DatabaseURL:       pgURL,
		RedisURL:          rdURL,
		TicketStoragePath: t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the event namespace
	eventos := repository.NewEventoRepository(db)
	require.NoError(t, eventos.Upsert(ctx, &model.Evento{
		Nombre:    "jornada-ii",
		Titulo:    "II Jornada de Investigación,",
		Subtitulo: "Innovación y Transferencia de Tecnología",
	}))

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_RegistroCompleto(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros",
		jsonBody(t, formulario("1717171717")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var emitido struct {
		Estado        string `json:"estado"`
		ParticipantID string `json:"participantID"`
		Notificacion  struct {
			Mensaje   string `json:"mensaje"`
			Severidad string `json:"severidad"`
		} `json:"notificacion"`
	}
	decodeJSON(t, resp, &emitido)
	assert.Equal(t, "emitido", emitido.Estado)
	assert.Equal(t, "¡Registro exitoso!", emitido.Notificacion.Mensaje)
	assert.Equal(t, "success", emitido.Notificacion.Severidad)

	id, err := uuid.Parse(emitido.ParticipantID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())

	// The record is retrievable by the issued ID.
	getResp := do(t, env.server, "GET", "/v1/eventos/jornada-ii/registros/"+emitido.ParticipantID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var registro struct {
		Cedula    string `json:"cedula"`
		CheckedIn bool   `json:"checkedIn"`
	}
	decodeJSON(t, getResp, &registro)
	assert.Equal(t, "1717171717", registro.Cedula)
	assert.False(t, registro.CheckedIn)

	// Ticket PNG downloads with the canonical filename and a decodable body.
	pngResp := do(t, env.server, "GET",
		"/v1/eventos/jornada-ii/registros/"+emitido.ParticipantID+"/ticket.png", nil)
	require.Equal(t, http.StatusOK, pngResp.StatusCode)
	esperado := fmt.Sprintf(`attachment; filename="ticket-1717171717-%s.png"`, emitido.ParticipantID)
	assert.Equal(t, esperado, pngResp.Header.Get("Content-Disposition"))
	img, err := png.Decode(pngResp.Body)
	pngResp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
}

func TestE2E_ReenvioIdenticoEsDuplicado(t *testing.T) {
	env := setupTestEnv(t)

	primero := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros",
		jsonBody(t, formulario("0102030405")))
	require.Equal(t, http.StatusCreated, primero.StatusCode)
	var r1 struct {
		ParticipantID string `json:"participantID"`
	}
	decodeJSON(t, primero, &r1)

	segundo := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros",
		jsonBody(t, formulario("0102030405")))
	require.Equal(t, http.StatusOK, segundo.StatusCode)
	var r2 struct {
		Estado        string `json:"estado"`
		ParticipantID string `json:"participantID"`
		Notificacion  struct {
			Mensaje string `json:"mensaje"`
		} `json:"notificacion"`
	}
	decodeJSON(t, segundo, &r2)

	assert.Equal(t, "duplicado", r2.Estado)
	assert.Equal(t, r1.ParticipantID, r2.ParticipantID)
	assert.Equal(t, "Ya se encuentra registrado un participante con los mismos datos!", r2.Notificacion.Mensaje)
}

func TestE2E_TuplaDistintaCreaSegundoRegistro(t *testing.T) {
	env := setupTestEnv(t)

	primero := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros",
		jsonBody(t, formulario("1111111111")))
	require.Equal(t, http.StatusCreated, primero.StatusCode)
	var r1 struct {
		ParticipantID string `json:"participantID"`
	}
	decodeJSON(t, primero, &r1)

	otro := formulario("1111111111")
	otro["correo"] = "otra@example.com"
	segundo := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros", jsonBody(t, otro))
	require.Equal(t, http.StatusCreated, segundo.StatusCode)
	var r2 struct {
		ParticipantID string `json:"participantID"`
	}
	decodeJSON(t, segundo, &r2)

	assert.NotEqual(t, r1.ParticipantID, r2.ParticipantID)
}

func TestE2E_ValidacionRechazaSinPersistir(t *testing.T) {
	env := setupTestEnv(t)

	invalido := formulario("123")
	invalido["correo"] = "sin-arroba"
	resp := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros", jsonBody(t, invalido))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var verr struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, resp, &verr)
	assert.Equal(t, "Por favor, complete todos los campos correctamente", verr.Detail)
	assert.Equal(t, "La cédula debe tener 10 dígitos", verr.Fields["cedula"])
	assert.Equal(t, "Ingrese un correo electrónico válido", verr.Fields["correo"])

	// A valid submission with the same phone still creates de novo: nothing
	// from the rejected attempt reached the store.
	ok := do(t, env.server, "POST", "/v1/eventos/jornada-ii/registros",
		jsonBody(t, formulario("1717171717")))
	assert.Equal(t, http.StatusCreated, ok.StatusCode)
}

func TestE2E_EventoDesconocido(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/v1/eventos/no-existe/registros",
		jsonBody(t, formulario("1717171717")))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_InfoDelEvento(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/v1/eventos/jornada-ii", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ev struct {
		Nombre    string `json:"nombre"`
		Subtitulo string `json:"subtitulo"`
	}
	decodeJSON(t, resp, &ev)
	assert.Equal(t, "jornada-ii", ev.Nombre)
	assert.Equal(t, "Innovación y Transferencia de Tecnología", ev.Subtitulo)
}
