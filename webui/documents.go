package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type DocumentsPage struct {
	app.Compo

	session *Session
	api     *API

	documents []Document
	clients   []Client
	loaded    bool
	errMsg    string

	newTitle     string
	newType      string
	newClientID  string
	newContent   string
	newSignature bool

	versionDrafts map[string]string
}

func NewDocumentsPage(session *Session, api *API) *DocumentsPage {
	return &DocumentsPage{session: session, api: api}
}

func (p *DocumentsPage) OnNav(ctx app.Context) {
	if !requireAuth(ctx, p.session) {
		return
	}
	if p.versionDrafts == nil {
		p.versionDrafts = map[string]string{}
	}
	p.load(ctx)
}

func (p *DocumentsPage) load(ctx app.Context) {
	ctx.Async(func() {
		var documents []Document
		var clients []Client
		err := p.api.Get("/documents", &documents)
		if err == nil {
			err = p.api.Get("/clients", &clients)
		}
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.documents = documents
			p.clients = clients
			p.loaded = true
			p.errMsg = ""
		})
	})
}

func (p *DocumentsPage) create(ctx app.Context, e app.Event) {
	e.PreventDefault()
	payload := map[string]any{
		"title":              p.newTitle,
		"document_type":      p.newType,
		"client_id":          p.newClientID,
		"content":            p.newContent,
		"requires_signature": p.newSignature,
	}
	ctx.Async(func() {
		var created Document
		err := p.api.Post("/documents", payload, &created)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.newTitle, p.newType, p.newClientID, p.newContent = "", "", "", ""
			p.newSignature = false
			p.load(ctx)
		})
	})
}

func (p *DocumentsPage) addVersion(ctx app.Context, id string) {
	content := p.versionDrafts[id]
	if content == "" {
		return
	}
	payload := map[string]any{"new_version_content": content}
	ctx.Async(func() {
		var updated Document
		err := p.api.Put("/documents/"+id, payload, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			delete(p.versionDrafts, id)
			p.load(ctx)
		})
	})
}

func (p *DocumentsPage) sign(ctx app.Context, id string) {
	ctx.Async(func() {
		var updated Document
		err := p.api.Post("/documents/"+id+"/sign", map[string]any{}, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *DocumentsPage) delete(ctx app.Context, id string) {
	ctx.Async(func() {
		err := p.api.Delete("/documents/" + id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *DocumentsPage) clientName(id string) string {
	for _, c := range p.clients {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (p *DocumentsPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Documents"),
		errorBanner(p.errMsg),
		app.Form().Class("create-form").OnSubmit(p.create).Body(
			app.Input().Type("text").Placeholder("Title").Required(true).
				Value(p.newTitle).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newTitle = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Type (proposal, contract...)").Required(true).
				Value(p.newType).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newType = ctx.JSSrc().Get("value").String()
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
			app.Textarea().Placeholder("Content").Text(p.newContent).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newContent = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Body(
				app.Input().Type("checkbox").Checked(p.newSignature).
					OnChange(func(ctx app.Context, e app.Event) {
						p.newSignature = ctx.JSSrc().Get("checked").Bool()
					}),
				app.Text("Requires signature"),
			),
			app.Button().Type("submit").Text("Add document"),
		),
		app.If(!p.loaded, func() app.UI {
			return app.P().Text("Loading...")
		}).Else(func() app.UI {
			return app.Ul().Class("item-list").Body(
				app.Range(p.documents).Slice(func(i int) app.UI {
					d := p.documents[i]
					return app.Li().Class("item").Body(
						app.Div().Class("item-head").Body(
							app.Strong().Text(d.Title),
							app.Span().Class("tag").Text(d.DocumentType),
							app.Span().Class("muted").Text(p.clientName(d.ClientID)),
							app.Span().Class("muted").Text(d.Status),
							app.Span().Class("muted").Text(fmt.Sprintf("v%d", d.CurrentVersion)),
							app.If(d.Signed, func() app.UI {
								return app.Span().Class("tag signed").Text("signed")
							}).Else(func() app.UI { return app.Span() }),
						),
						app.Div().Class("item-actions").Body(
							app.Input().Type("text").Placeholder("New version content").
								Value(p.versionDrafts[d.ID]).
								OnInput(func(ctx app.Context, e app.Event) {
									p.versionDrafts[d.ID] = ctx.JSSrc().Get("value").String()
								}),
							app.Button().Text("Add version").OnClick(func(ctx app.Context, e app.Event) {
								p.addVersion(ctx, d.ID)
							}),
							app.If(d.RequiresSignature && !d.Signed, func() app.UI {
								return app.Button().Text("Sign").OnClick(func(ctx app.Context, e app.Event) {
									p.sign(ctx, d.ID)
								})
							}).Else(func() app.UI { return app.Span() }),
							app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
								p.delete(ctx, d.ID)
							}),
						),
					)
				}),
			)
		}),
	)
}
