package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type navLink struct {
	label string
	path  string
}

var navLinks = []navLink{
	{"Clients", "/clients"},
	{"Organisations", "/organisations"},
	{"Projects", "/projects"},
	{"Meetings", "/meetings"},
	{"Documents", "/documents"},
}

// layout wraps page content with the shared navigation bar.
func layout(session *Session, content ...app.UI) app.UI {
	return app.Div().Class("app").Body(
		app.Nav().Class("topnav").Body(
			app.A().Class("brand").Href("/clients").Text("Rogue Drones Workflow"),
			app.Range(navLinks).Slice(func(i int) app.UI {
				l := navLinks[i]
				return app.A().Class("navlink").Href(l.path).Text(l.label)
			}),
			app.If(session.Authenticated(), func() app.UI {
				return app.A().Class("navlink logout").Href("/login").Text("Log out")
			}).Else(func() app.UI {
				return app.A().Class("navlink").Href("/login").Text("Log in")
			}),
		),
		app.Main().Class("content").Body(content...),
	)
}

// errorBanner renders the last API error, or nothing when msg is empty.
func errorBanner(msg string) app.UI {
	return app.If(msg != "", func() app.UI {
		return app.Div().Class("error-banner").Text(msg)
	}).Else(func() app.UI {
		return app.Div()
	})
}

// requireAuth restores the session and redirects to the login page when no
// token is available. It returns false when the caller should stop loading.
func requireAuth(ctx app.Context, session *Session) bool {
	if session.Restore(ctx) {
		return true
	}
	ctx.Navigate("/login")
	return false
}

// handleAPIError clears the session and redirects on a 401, and otherwise
// returns the message to display.
func handleAPIError(ctx app.Context, session *Session, err error) string {
	if IsUnauthorized(err) {
		session.Clear(ctx)
		ctx.Navigate("/login")
		return ""
	}
	return err.Error()
}
