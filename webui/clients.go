package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type ClientsPage struct {
	app.Compo

	session *Session
	api     *API

	clients []Client
	orgs    []Organisation
	loaded  bool
	errMsg  string

	// Create form
	newName  string
	newEmail string
	newPhone string
	newOrgID string
	newQuery string

	// Inline notes edit
	editingID string
	editNotes string
}

func NewClientsPage(session *Session, api *API) *ClientsPage {
	return &ClientsPage{session: session, api: api}
}

func (p *ClientsPage) OnNav(ctx app.Context) {
	if !requireAuth(ctx, p.session) {
		return
	}
	p.load(ctx)
}

func (p *ClientsPage) load(ctx app.Context) {
	ctx.Async(func() {
		var clients []Client
		var orgs []Organisation
		err := p.api.Get("/clients", &clients)
		if err == nil {
			err = p.api.Get("/organisations", &orgs)
		}
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.clients = clients
			p.orgs = orgs
			p.loaded = true
			p.errMsg = ""
		})
	})
}

func (p *ClientsPage) create(ctx app.Context, e app.Event) {
	e.PreventDefault()
	payload := map[string]any{
		"name":  p.newName,
		"email": p.newEmail,
	}
	if p.newPhone != "" {
		payload["phone"] = p.newPhone
	}
	if p.newOrgID != "" {
		payload["organisation_id"] = p.newOrgID
	}
	if p.newQuery != "" {
		payload["initial_query"] = p.newQuery
	}

	ctx.Async(func() {
		var created Client
		err := p.api.Post("/clients", payload, &created)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.newName, p.newEmail, p.newPhone, p.newOrgID, p.newQuery = "", "", "", "", ""
			p.load(ctx)
		})
	})
}

func (p *ClientsPage) saveNotes(ctx app.Context, id string) {
	notes := p.editNotes
	ctx.Async(func() {
		var updated Client
		err := p.api.Put("/clients/"+id, map[string]any{"notes": notes}, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.editingID = ""
			p.load(ctx)
		})
	})
}

func (p *ClientsPage) delete(ctx app.Context, id string) {
	ctx.Async(func() {
		err := p.api.Delete("/clients/" + id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *ClientsPage) orgName(id *string) string {
	if id == nil {
		return ""
	}
	for _, o := range p.orgs {
		if o.ID == *id {
			return o.Name
		}
	}
	return ""
}

func (p *ClientsPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Clients"),
		errorBanner(p.errMsg),
		app.Form().Class("create-form").OnSubmit(p.create).Body(
			app.Input().Type("text").Placeholder("Name").Required(true).
				Value(p.newName).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newName = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("email").Placeholder("Email").Required(true).
				Value(p.newEmail).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newEmail = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Phone").
				Value(p.newPhone).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newPhone = ctx.JSSrc().Get("value").String()
				}),
			app.Select().OnChange(func(ctx app.Context, e app.Event) {
				p.newOrgID = ctx.JSSrc().Get("value").String()
			}).Body(
				app.Option().Value("").Text("No organisation"),
				app.Range(p.orgs).Slice(func(i int) app.UI {
					o := p.orgs[i]
					return app.Option().Value(o.ID).Text(o.Name)
				}),
			),
			app.Input().Type("text").Placeholder("Initial query").
				Value(p.newQuery).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newQuery = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Text("Add client"),
		),
		app.If(!p.loaded, func() app.UI {
			return app.P().Text("Loading...")
		}).Else(func() app.UI {
			return app.Ul().Class("item-list").Body(
				app.Range(p.clients).Slice(func(i int) app.UI {
					c := p.clients[i]
					return app.Li().Class("item").Body(
						app.Div().Class("item-head").Body(
							app.Strong().Text(c.Name),
							app.Span().Class("muted").Text(c.Email),
							app.If(p.orgName(c.OrganisationID) != "", func() app.UI {
								return app.Span().Class("tag").Text(p.orgName(c.OrganisationID))
							}).Else(func() app.UI { return app.Span() }),
						),
						app.If(p.editingID == c.ID, func() app.UI {
							return app.Div().Class("notes-edit").Body(
								app.Textarea().Text(p.editNotes).
									OnInput(func(ctx app.Context, e app.Event) {
										p.editNotes = ctx.JSSrc().Get("value").String()
									}),
								app.Button().Text("Save").OnClick(func(ctx app.Context, e app.Event) {
									p.saveNotes(ctx, c.ID)
								}),
								app.Button().Text("Cancel").OnClick(func(ctx app.Context, e app.Event) {
									p.editingID = ""
								}),
							)
						}).Else(func() app.UI {
							return app.Div().Class("item-actions").Body(
								app.Span().Class("notes").Text(c.Notes),
								app.Button().Text("Edit notes").OnClick(func(ctx app.Context, e app.Event) {
									p.editingID = c.ID
									p.editNotes = c.Notes
								}),
								app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
									p.delete(ctx, c.ID)
								}),
							)
						}),
					)
				}),
			)
		}),
	)
}
