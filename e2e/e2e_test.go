//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"campo-app-go/internal/app"
	"campo-app-go/internal/auth"
	"campo-app-go/internal/config"
	"campo-app-go/internal/db"
	"campo-app-go/internal/repository/postgres"
	catalogrepo "campo-app-go/internal/repository/postgres/catalog"
	"campo-app-go/internal/transport/httpserver"
	"campo-app-go/internal/transport/httpserver/handler"
	"campo-app-go/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testEnv struct {
	server     *httptest.Server
	authServer *httptest.Server
	db         *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	authServer := newAuthServer(t)

	cfg := config.Config{
		DB: config.DBConfig{Driver: config.DriverPostgres, DSN: dsn},
		Supabase: config.SupabaseConfig{
			URL:         authServer.URL,
			AnonKey:     "test-key",
			AuthTimeout: 2 * time.Second,
		},
		AllowedOrigins: []string{"https://web.telegram.org"},
	}
	log := logger.Nop()

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn, postgres.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}
	if err := catalogrepo.NewPostgres(dbConn).Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	services := app.NewServices(dbConn, auth.NewGoTrueClient(cfg.Supabase))
	router := httpserver.NewRouter(cfg, handler.New(services, log))
	server := httptest.NewServer(router)

	return &testEnv{server: server, authServer: authServer, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	e.authServer.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

// newAuthServer emulates the GoTrue password grant and signup endpoints.
// Accounts are derived from the email; the password must be "secret".
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()

	var (
		mu       sync.Mutex
		accounts = map[string]string{}
	)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mu.Lock()
		defer mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/v1/signup":
			if _, exists := accounts[creds.Email]; exists {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"code":422,"msg":"User already registered"}`))
				return
			}
			id := uuid.NewString()
			accounts[creds.Email] = id
			_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "email": creds.Email})
		case "/auth/v1/token":
			id, ok := accounts[creds.Email]
			if !ok || creds.Password != "secret" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "token", "user": map[string]any{"id": id}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		`TRUNCATE TABLE "Cosechas", "Lluvias", "Campañas", "Lotes", invitaciones, "Campos_Usuarios", "Campos", telegram_connections CASCADE`,
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	decoded := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &decoded); err != nil {
			t.Fatalf("decode response %s: %v", strings.TrimSpace(string(respBody)), err)
		}
	}
	return resp, decoded
}

func errorCode(body map[string]any) string {
	envelope, _ := body["error"].(map[string]any)
	code, _ := envelope["code"].(string)
	return code
}

func register(t *testing.T, env *testEnv, telegramID int64, email string) string {
	t.Helper()
	resp, body := requestJSON(t, env.server.Client(), http.MethodPost, env.server.URL+"/api/telegram/auth", map[string]any{
		"telegram_id": telegramID,
		"email":       email,
		"password":    "secret",
		"action":      "REGISTER",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register %s: %d %v", email, resp.StatusCode, body)
	}
	userID, _ := body["user_id"].(string)
	return userID
}

func TestE2ELinkAndRelink(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.server.Client()

	firstID := register(t, env, 500, "first@example.com")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/auth", map[string]any{
		"telegram_id": 500, "email": "first@example.com", "password": "secret", "action": "REGISTER",
	})
	if resp.StatusCode != http.StatusBadRequest || errorCode(body) != "registration_failed" {
		t.Fatalf("duplicate registration: %d %v", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/auth", map[string]any{
		"telegram_id": 500, "email": "first@example.com", "password": "nope", "action": "LOGIN",
	})
	if resp.StatusCode != http.StatusUnauthorized || errorCode(body) != "invalid_credentials" {
		t.Fatalf("bad login: %d %v", resp.StatusCode, body)
	}

	secondID := register(t, env, 501, "second@example.com")
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/auth", map[string]any{
		"telegram_id": "500", "email": "second@example.com", "password": "secret", "action": "LOGIN",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("relink: %d %v", resp.StatusCode, body)
	}

	_, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/check", map[string]any{"telegram_id": 500})
	if body["user_id"] != secondID || firstID == secondID {
		t.Fatalf("expected telegram 500 linked to %s, got %v", secondID, body)
	}
}

func TestE2EConcurrentRedemption(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.server.Client()

	register(t, env, 1, "owner@example.com")
	const joiners = 5
	for i := int64(0); i < joiners; i++ {
		register(t, env, 100+i, "joiner"+string(rune('a'+i))+"@example.com")
	}

	_, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/fields/create", map[string]any{"telegram_id": 1, "name": "La Esperanza"})
	fieldID, _ := body["field_id"].(string)
	_, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/invitations", map[string]any{"telegram_id": 1, "field_id": fieldID})
	code, _ := body["code"].(string)
	if len(code) != 6 {
		t.Fatalf("expected invitation code, got %v", body)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := int64(0); i < joiners; i++ {
		wg.Add(1)
		go func(telegramID int64) {
			defer wg.Done()
			resp, _ := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/fields/join", map[string]any{"telegram_id": telegramID, "code": code})
			if resp.StatusCode == http.StatusOK {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(100 + i)
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one redemption, got %d", successes)
	}

	_, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/telegram/fields/members", map[string]any{"telegram_id": 1, "field_id": fieldID})
	members, _ := body["members"].([]any)
	if len(members) != 2 {
		t.Fatalf("expected owner plus one member, got %v", body)
	}
}

func TestE2ERecordsFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.server.Client()
	base := env.server.URL + "/api/telegram"

	register(t, env, 1, "owner@example.com")
	register(t, env, 2, "outsider@example.com")

	_, body := requestJSON(t, client, http.MethodPost, base+"/fields/create", map[string]any{"telegram_id": 1, "name": "La Esperanza"})
	fieldID, _ := body["field_id"].(string)
	_, body = requestJSON(t, client, http.MethodPost, base+"/plots/create", map[string]any{"telegram_id": 1, "field_id": fieldID, "name": "Norte", "ha": 40})
	plotID, _ := body["plot_id"].(string)
	_, body = requestJSON(t, client, http.MethodPost, base+"/campaigns/create", map[string]any{"telegram_id": 1, "plot_id": plotID, "name": "Soja 24/25"})
	campaignID, _ := body["campaign_id"].(string)

	resp, body := requestJSON(t, client, http.MethodPost, base+"/rainfall", map[string]any{"telegram_id": 1, "field_id": fieldID, "date": "2025-03-01", "mm": 18})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("rainfall: %d %v", resp.StatusCode, body)
	}
	rainfallID, _ := body["id"].(string)

	resp, body = requestJSON(t, client, http.MethodPost, base+"/harvests", map[string]any{"telegram_id": 1, "campaign_id": campaignID, "yield": "3150", "unit_id": 1, "moisture": 13.5})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("harvest: %d %v", resp.StatusCode, body)
	}

	_, body = requestJSON(t, client, http.MethodGet, base+"/harvests?telegram_id=1", nil)
	harvests, _ := body["harvests"].([]any)
	if len(harvests) != 1 {
		t.Fatalf("expected one harvest, got %v", body)
	}
	view := harvests[0].(map[string]any)
	if view["unit_name"] != "kg/ha" || view["field_name"] != "La Esperanza" || view["moisture"] != 13.5 {
		t.Fatalf("unexpected harvest view %v", view)
	}

	resp, _ = requestJSON(t, client, http.MethodDelete, base+"/rainfall/"+rainfallID+"?telegram_id=2", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("outsider delete: expected 403, got %d", resp.StatusCode)
	}
	resp, _ = requestJSON(t, client, http.MethodDelete, base+"/rainfall/"+rainfallID+"?telegram_id=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner delete: expected 200, got %d", resp.StatusCode)
	}
	_, body = requestJSON(t, client, http.MethodGet, base+"/rainfall?telegram_id=1&field_id="+fieldID, nil)
	if rainfall, _ := body["rainfall"].([]any); len(rainfall) != 0 {
		t.Fatalf("expected rainfall removed, got %v", body)
	}
}
