package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// APIError carries the HTTP status and the server's detail message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// API is a thin client for the workflow backend. It attaches the session
// token to every request and decodes error bodies into APIError.
type API struct {
	base    string
	client  *http.Client
	session *Session
}

func NewAPI(session *Session) *API {
	base := app.Getenv("API_URL")
	if base == "" {
		base = "/api/v1"
	}
	return &API{
		base:    strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
}

func (a *API) do(method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequest(method, a.base+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if a.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.session.Token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Detail: payload.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (a *API) Get(path string, out any) error {
	return a.do(http.MethodGet, path, nil, "", out)
}

func (a *API) Post(path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return a.do(http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

func (a *API) Put(path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return a.do(http.MethodPut, path, bytes.NewReader(body), "application/json", out)
}

func (a *API) Delete(path string) error {
	return a.do(http.MethodDelete, path, nil, "", nil)
}

// Login posts the form-encoded credentials and stores the returned token
// on the session.
func (a *API) Login(ctx app.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token TokenResponse
	err := a.do(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", &token)
	if err != nil {
		return err
	}
	a.session.Store(ctx, token.AccessToken)
	return nil
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}
