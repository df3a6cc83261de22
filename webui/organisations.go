package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type OrganisationsPage struct {
	app.Compo

	session *Session
	api     *API

	orgs   []Organisation
	loaded bool
	errMsg string

	newName     string
	newWebsite  string
	newIndustry string
	newLocation string
}

func NewOrganisationsPage(session *Session, api *API) *OrganisationsPage {
	return &OrganisationsPage{session: session, api: api}
}

func (p *OrganisationsPage) OnNav(ctx app.Context) {
	if !requireAuth(ctx, p.session) {
		return
	}
	p.load(ctx)
}

func (p *OrganisationsPage) load(ctx app.Context) {
	ctx.Async(func() {
		var orgs []Organisation
		err := p.api.Get("/organisations", &orgs)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.orgs = orgs
			p.loaded = true
			p.errMsg = ""
		})
	})
}

func (p *OrganisationsPage) create(ctx app.Context, e app.Event) {
	e.PreventDefault()
	payload := map[string]any{"name": p.newName}
	if p.newWebsite != "" {
		payload["website"] = p.newWebsite
	}
	if p.newIndustry != "" {
		payload["industry"] = p.newIndustry
	}
	if p.newLocation != "" {
		payload["location"] = p.newLocation
	}

	ctx.Async(func() {
		var created Organisation
		err := p.api.Post("/organisations", payload, &created)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.newName, p.newWebsite, p.newIndustry, p.newLocation = "", "", "", ""
			p.load(ctx)
		})
	})
}

func (p *OrganisationsPage) delete(ctx app.Context, id string) {
	ctx.Async(func() {
		err := p.api.Delete("/organisations/" + id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = handleAPIError(ctx, p.session, err)
				return
			}
			p.load(ctx)
		})
	})
}

func (p *OrganisationsPage) Render() app.UI {
	return layout(p.session,
		app.H1().Text("Organisations"),
		errorBanner(p.errMsg),
		app.Form().Class("create-form").OnSubmit(p.create).Body(
			app.Input().Type("text").Placeholder("Name").Required(true).
				Value(p.newName).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newName = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Website").
				Value(p.newWebsite).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newWebsite = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Industry").
				Value(p.newIndustry).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newIndustry = ctx.JSSrc().Get("value").String()
				}),
			app.Input().Type("text").Placeholder("Location").
				Value(p.newLocation).
				OnInput(func(ctx app.Context, e app.Event) {
					p.newLocation = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Text("Add organisation"),
		),
		app.If(!p.loaded, func() app.UI {
			return app.P().Text("Loading...")
		}).Else(func() app.UI {
			return app.Ul().Class("item-list").Body(
				app.Range(p.orgs).Slice(func(i int) app.UI {
					o := p.orgs[i]
					return app.Li().Class("item").Body(
						app.Div().Class("item-head").Body(
							app.Strong().Text(o.Name),
							app.Span().Class("muted").Text(o.Industry),
							app.Span().Class("muted").Text(o.Location),
						),
						app.Div().Class("item-actions").Body(
							app.If(o.Website != "", func() app.UI {
								return app.A().Href(o.Website).Text(o.Website)
							}).Else(func() app.UI { return app.Span() }),
							app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
								p.delete(ctx, o.ID)
							}),
						),
					)
				}),
			)
		}),
	)
}
