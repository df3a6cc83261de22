package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const tokenStorageKey = "workflow.token"

// Session holds the auth state for the running app. One instance is
// created in main and shared by every page.
type Session struct {
	Token string
	User  *User
}

func NewSession() *Session {
	return &Session{}
}

// Restore loads a previously stored token from local storage. It returns
// true when a token was found.
func (s *Session) Restore(ctx app.Context) bool {
	if s.Token != "" {
		return true
	}
	var token string
	if err := ctx.LocalStorage().Get(tokenStorageKey, &token); err != nil {
		app.Log("session restore:", err)
		return false
	}
	s.Token = token
	return token != ""
}

// Store saves the token in memory and local storage.
func (s *Session) Store(ctx app.Context, token string) {
	s.Token = token
	if err := ctx.LocalStorage().Set(tokenStorageKey, token); err != nil {
		app.Log("session store:", err)
	}
}

// Clear drops the token and the cached user.
func (s *Session) Clear(ctx app.Context) {
	s.Token = ""
	s.User = nil
	ctx.LocalStorage().Del(tokenStorageKey)
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}
