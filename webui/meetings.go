package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type MeetingsPage struct {
	app.Compo

	session *Session
	api     *API

	meetings []Meeting
	clients  []Client
	loaded   bool
	errMsg   string

	newTitle    string
	newClientID string
	newStart    string
	newVirtual  bool

	keyPointDrafts map[string]string
}

func NewMeetingsPage(session *Session, api *API) *MeetingsPage {
	return &MeetingsPage{session: session, api: api, newVirtual: true}
}

func (p *MeetingsPage) OnNav(ctx app.Context) {
	if !requireAuth(ctx, p.session) {
		return
	}
	if p.keyPointDrafts == nil {
		p.keyPointDrafts = map[string]string{}
	}
	p.load(ctx)
}

func (p *MeetingsPage) load(ctx app.Context) {
	ctx.Async(func() {
		var meetings []Meeting
		var clients []Client
		err := p.api.Get("/meetings", &meetings)
		if err == nil {
			err = p.api.Get("/clients", &clients)
		}
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.meetings = meetings
			p.clients = clients
			p.loaded = true
			p.errMsg = ""
		})
	})
}

func (p *MeetingsPage) create(ctx app.Context, e app.Event) {
	e.PreventDefault()

	// datetime-local gives "2006-01-02T15:04"; the API wants RFC 3339.
	start, err := time.Parse("2006-01-02T15:04", p.newStart)
	if err != nil {
		p.errMsg = "invalid start time"
		return
	}
	payload := map[string]any{
		"title":      p.newTitle,
		"client_id":  p.newClientID,
		"start_time": start.UTC().Format(time.RFC3339),
		"virtual":    p.newVirtual,
	}
	ctx.Async(func() {
		var created Meeting
		err := p.api.Post("/meetings", payload, &created)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.newTitle, p.newClientID, p.newStart = "", "", ""
			p.newVirtual = true
			p.load(ctx)
		})
	})
}

func (p *MeetingsPage) addKeyPoint(ctx app.Context, id string) {
	draft := p.keyPointDrafts[id]
	if draft == "" {
		return
	}
	points := []KeyPoint{{Content: draft}}
	ctx.Async(func() {
		var updated Meeting
		err := p.api.Post("/meetings/"+id+"/key_points", points, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			delete(p.keyPointDrafts, id)
			p.load(ctx)
		})
	})
}

func (p *MeetingsPage) delete(ctx app.Context, id string) {
	ctx.Async(func() {
		err := p.api.Delete("/meetings/" + id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *MeetingsPage) clientName(id string) string {
	for _, c := range p.clients {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func formatStart(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Mon 2 Jan 2006 15:04")
}

func (p *MeetingsPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Meetings"),
		errorBanner(p.errMsg),
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
			app.Input().Type("datetime-local").Required(true).
				Value(p.newStart).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newStart = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Body(
				app.Input().Type("checkbox").Checked(p.newVirtual).
					OnChange(func(ctx app.Context, e app.Event) {
						p.newVirtual = ctx.JSSrc().Get("checked").Bool()
					}),
				app.Text("Virtual"),
			),
			app.Button().Type("submit").Text("Add meeting"),
		),
		app.If(!p.loaded, func() app.UI {
			return app.P().Text("Loading...")
		}).Else(func() app.UI {
			return app.Ul().Class("item-list").Body(
				app.Range(p.meetings).Slice(func(i int) app.UI {
					m := p.meetings[i]
					return app.Li().Class("item").Body(
						app.Div().Class("item-head").Body(
							app.Strong().Text(m.Title),
							app.Span().Class("muted").Text(p.clientName(m.ClientID)),
							app.Span().Class("muted").Text(formatStart(m.StartTime)),
							app.If(m.Virtual, func() app.UI {
								return app.Span().Class("tag").Text("virtual")
							}).Else(func() app.UI {
								return app.Span().Class("tag").Text("in person")
							}),
						),
						app.If(len(m.KeyPoints) > 0, func() app.UI {
							return app.Ul().Class("key-points").Body(
								app.Range(m.KeyPoints).Slice(func(j int) app.UI {
									return app.Li().Text(m.KeyPoints[j].Content)
								}),
							)
						}).Else(func() app.UI { return app.Div() }),
						app.Div().Class("item-actions").Body(
							app.Input().Type("text").Placeholder("New key point").
								Value(p.keyPointDrafts[m.ID]).
								OnInput(func(ctx app.Context, e app.Event) {
									p.keyPointDrafts[m.ID] = ctx.JSSrc().Get("value").String()
								}),
							app.Button().Text("Add key point").OnClick(func(ctx app.Context, e app.Event) {
								p.addKeyPoint(ctx, m.ID)
							}),
							app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
								p.delete(ctx, m.ID)
							}),
						),
					)
				}),
			)
		}),
	)
}
