package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type LoginPage struct {
	app.Compo

	session *Session
	api     *API

	email    string
	password string
	errMsg   string
	busy     bool
}

func NewLoginPage(session *Session, api *API) *LoginPage {
	return &LoginPage{session: session, api: api}
}

func (p *LoginPage) OnNav(ctx app.Context) {
	// Navigating here acts as logout when a session exists.
	if p.session.Authenticated() {
		p.session.Clear(ctx)
	}
}

func (p *LoginPage) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.busy = true
	p.errMsg = ""

	email, password := p.email, p.password
	ctx.Async(func() {
		err := p.api.Login(ctx, email, password)
		ctx.Dispatch(func(ctx app.Context) {
			p.busy = false
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			ctx.Navigate("/clients")
		})
	})
}

func (p *LoginPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Log in"),
		errorBanner(p.errMsg),
		app.Form().Class("auth-form").OnSubmit(p.submit).Body(
			app.Input().Type("email").Placeholder("Email").Required(true).
				Value(p.email).
				OnInput(func(ctx app.Context, e app.Event) {
					p.email = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("password").Placeholder("Password").Required(true).
				Value(p.password).
				OnInput(func(ctx app.Context, e app.Event) {
					p.password = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Disabled(p.busy).Text("Log in"),
		),
		app.P().Body(
			app.Text("No account yet? "),
			app.A().Href("/register").Text("Register"),
		),
	)
}

type RegisterPage struct {
	app.Compo

	session *Session
	api     *API

	email     string
	password  string
	firstName string
	lastName  string
	errMsg    string
	busy      bool
}

func NewRegisterPage(session *Session, api *API) *RegisterPage {
	return &RegisterPage{session: session, api: api}
}

func (p *RegisterPage) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.busy = true
	p.errMsg = ""

	payload := map[string]string{
		"email":      p.email,
		"password":   p.password,
		"first_name": p.firstName,
		"last_name":  p.lastName,
	}
	email, password := p.email, p.password
	ctx.Async(func() {
		var created User
		err := p.api.Post("/auth/register", payload, &created)
		if err == nil {
			err = p.api.Login(ctx, email, password)
		}
		ctx.Dispatch(func(ctx app.Context) {
			p.busy = false
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			ctx.Navigate("/clients")
		})
	})
}

func (p *RegisterPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Register"),
		errorBanner(p.errMsg),
		app.Form().Class("auth-form").OnSubmit(p.submit).Body(
			app.Input().Type("text").Placeholder("First name").Required(true).
				Value(p.firstName).
				OnInput(func(ctx app.Context, e app.Event) {
					p.firstName = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Last name").Required(true).
				Value(p.lastName).
				OnInput(func(ctx app.Context, e app.Event) {
					p.lastName = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("email").Placeholder("Email").Required(true).
				Value(p.email).
				OnInput(func(ctx app.Context, e app.Event) {
					p.email = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("password").Placeholder("Password (8+ characters)").Required(true).
				Value(p.password).
				OnInput(func(ctx app.Context, e app.Event) {
					p.password = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Disabled(p.busy).Text("Create account"),
		),
	)
}
