package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRegisterLoginMe(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":      "kate@example.com",
		"password":   "supersecret",
		"first_name": "Kate",
		"last_name":  "Doe",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)

	if body["email"] != "kate@example.com" {
		t.Errorf("register: email = %v", body["email"])
	}

	if _, leaked := body["hashed_password"]; leaked {
		t.Error("register response leaks the password hash")
	}

	if body["is_active"] != true || body["is_admin"] != false {
		t.Errorf("register: flags = active %v admin %v", body["is_active"], body["is_admin"])
	}

	token := login(t, r, "kate@example.com", "supersecret")

	me := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)

	if me.Code != http.StatusOK {
		t.Fatalf("me: got %d: %s", me.Code, me.Body.String())
	}

	if decodeBody(t, me)["email"] != "kate@example.com" {
		t.Errorf("me: unexpected body %s", me.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupServer(t)

	payload := map[string]interface{}{
		"email":      "dup@example.com",
		"password":   "supersecret",
		"first_name": "First",
		"last_name":  "User",
	}

	if w := doJSON(t, r, http.MethodPost, "/auth/register", "", payload); w.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", payload)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got %d, want 400", w.Code)
	}

	if decodeBody(t, w)["error"] != "Email already registered" {
		t.Errorf("duplicate register: body %s", w.Body.String())
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLoginDoesNotLeakWhichCheckFailed(t *testing.T) {
	r := setupServer(t)

	doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":      "real@example.com",
		"password":   "supersecret",
		"first_name": "Real",
		"last_name":  "User",
	})

	attempt := func(email, password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {email}, "password": {password}}
		req := httptest.NewRequest(http.MethodPost, basePath+"/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	wrongPassword := attempt("real@example.com", "not-the-password")
	unknownEmail := attempt("ghost@example.com", "supersecret")

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("got %d and %d, want 401 for both", wrongPassword.Code, unknownEmail.Code)
	}

	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupServer(t)

	if w := doJSON(t, r, http.MethodGet, "/clients", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: got %d, want 401", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, "/clients", "not-a-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", w.Code)
	}
}

func TestHealthEndpointsNeedNoAuth(t *testing.T) {
	r := setupServer(t)

	if w := doJSON(t, r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health: got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/health/db", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("health/db: got %d", w.Code)
	}

	if decodeBody(t, w)["status"] != "healthy" {
		t.Errorf("health/db: body %s", w.Body.String())
	}
}
