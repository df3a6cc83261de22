package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var projectStatuses = []string{
	"assessment", "proposal", "in_progress", "on_hold", "completed", "cancelled",
}

type ProjectsPage struct {
	app.Compo

	session *Session
	api     *API

	projects []Project
	clients  []Client
	loaded   bool
	errMsg   string

	statusFilter string

	newTitle    string
	newClientID string
}

func NewProjectsPage(session *Session, api *API) *ProjectsPage {
	return &ProjectsPage{session: session, api: api}
}

func (p *ProjectsPage) OnNav(ctx app.Context) {
	if !requireAuth(ctx, p.session) {
		return
	}
	p.load(ctx)
}

func (p *ProjectsPage) load(ctx app.Context) {
	path := "/projects"
	if p.statusFilter != "" {
		path += "?status=" + p.statusFilter
	}
	ctx.Async(func() {
		var projects []Project
		var clients []Client
		err := p.api.Get(path, &projects)
		if err == nil {
			err = p.api.Get("/clients", &clients)
		}
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.projects = projects
			p.clients = clients
			p.loaded = true
			p.errMsg = ""
		})
	})
}

func (p *ProjectsPage) create(ctx app.Context, e app.Event) {
	e.PreventDefault()
	payload := map[string]any{
		"title":     p.newTitle,
		"client_id": p.newClientID,
	}
	ctx.Async(func() {
		var created Project
		err := p.api.Post("/projects", payload, &created)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.newTitle, p.newClientID = "", ""
			p.load(ctx)
		})
	})
}

func (p *ProjectsPage) setStatus(ctx app.Context, id, status string) {
	ctx.Async(func() {
		var updated Project
		err := p.api.Put("/projects/"+id, map[string]any{"status": status}, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *ProjectsPage) delete(ctx app.Context, id string) {
	ctx.Async(func() {
		err := p.api.Delete("/projects/" + id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *ProjectsPage) clientName(id string) string {
	for _, c := range p.clients {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (p *ProjectsPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Projects"),
		errorBanner(p.errMsg),
		app.Div().Class("filter-bar").Body(
			app.Label().Text("Status"),
			app.Select().OnChange(func(ctx app.Context, e app.Event) {
				p.statusFilter = ctx.JSSrc().Get("value").String()
				p.load(ctx)
			}).Body(
				app.Option().Value("").Text("All"),
				app.Range(projectStatuses).Slice(func(i int) app.UI {
					return app.Option().Value(projectStatuses[i]).Text(projectStatuses[i])
				}),
			),
		),
		app.Form().Class("create-form").OnSubmit(p.create).Body(
			app.Input().Type("text").Placeholder("Title").Required(true).
				Value(p.newTitle).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newTitle = ctx.JSSrc().Get("value").String()
				}),
			app.Select().Required(true).OnChange(func(ctx app.Context, e app.Event) {
				p.newClientID = ctx.JSSrc().Get("value").String()
			}).Body(
				app.Option().Value("").Text("Select client"),
				app.Range(p.clients).Slice(func(i int) app.UI {
					c := p.clients[i]
					return app.Option().Value(c.ID).Text(c.Name)
				}),
			),
			app.Button().Type("submit").Text("Add project"),
		),
		app.If(!p.loaded, func() app.UI {
			return app.P().Text("Loading...")
		}).Else(func() app.UI {
			return app.Ul().Class("item-list").Body(
				app.Range(p.projects).Slice(func(i int) app.UI {
					pr := p.projects[i]
					return app.Li().Class("item").Body(
						app.Div().Class("item-head").Body(
							app.Strong().Text(pr.Title),
							app.Span().Class("muted").Text(p.clientName(pr.ClientID)),
						),
						app.Div().Class("item-actions").Body(
							app.Select().OnChange(func(ctx app.Context, e app.Event) {
								p.setStatus(ctx, pr.ID, ctx.JSSrc().Get("value").String())
							}).Body(
								app.Range(projectStatuses).Slice(func(j int) app.UI {
									s := projectStatuses[j]
									return app.Option().Value(s).Text(s).Selected(s == pr.Status)
								}),
							),
							app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
								p.delete(ctx, pr.ID)
							}),
						),
					)
				}),
			)
		}),
	)
}
