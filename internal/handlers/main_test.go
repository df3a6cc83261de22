package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/auth"
	"github.com/rogue-drones/workflow/internal/router"
	"gorm.io/gorm"
)

const basePath = "/api/v1"

// setupServer wires the full router against a fresh in-memory database.
// A single connection keeps every query on the same :memory: instance.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})

	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := gdb.DB()

	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	db.DB = gdb

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("migrate database: %v", err)
	}

	if err := auth.Init("test-secret", time.Hour); err != nil {
		t.Fatalf("init auth: %v", err)
	}

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, basePath+path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}

	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}

	return out
}

var userSeq int

// registerAndLogin creates a fresh user and returns a bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("user%d@example.com", userSeq)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "supersecret",
		"first_name": "Test",
		"last_name":  "User",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d: %s", w.Code, w.Body.String())
	}

	return login(t, r, email, "supersecret")
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}

	req := httptest.NewRequest(http.MethodPost, basePath+"/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)

	token, ok := body["access_token"].(string)

	if !ok || token == "" {
		t.Fatalf("login: missing access_token in %s", w.Body.String())
	}

	return token
}

// Fixture helpers used across entity tests.

func createOrganisation(t *testing.T, r *gin.Engine, token, name string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/organisations", token, map[string]interface{}{"name": name})

	if w.Code != http.StatusCreated {
		t.Fatalf("create organisation: got %d: %s", w.Code, w.Body.String())
	}

	return decodeBody(t, w)["_id"].(string)
}

func createClient(t *testing.T, r *gin.Engine, token, name, email string, orgID string) string {
	t.Helper()

	body := map[string]interface{}{"name": name, "email": email}

	if orgID != "" {
		body["organisation_id"] = orgID
	}

	w := doJSON(t, r, http.MethodPost, "/clients", token, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("create client: got %d: %s", w.Code, w.Body.String())
	}

	return decodeBody(t, w)["_id"].(string)
}

func createProject(t *testing.T, r *gin.Engine, token, title, clientID string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/projects", token, map[string]interface{}{
		"title":     title,
		"client_id": clientID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("create project: got %d: %s", w.Code, w.Body.String())
	}

	return decodeBody(t, w)["_id"].(string)
}
