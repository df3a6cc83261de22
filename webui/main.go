package main

import (
	"log"
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// The session is constructed once at startup and handed to every page,
// so auth state is injected rather than ambient.
func main() {
	session := NewSession()
	api := NewAPI(session)

	app.Route("/", func() app.Composer { return NewClientsPage(session, api) })
	app.Route("/login", func() app.Composer { return NewLoginPage(session, api) })
	app.Route("/register", func() app.Composer { return NewRegisterPage(session, api) })
	app.Route("/clients", func() app.Composer { return NewClientsPage(session, api) })
	app.Route("/organisations", func() app.Composer { return NewOrganisationsPage(session, api) })
	app.Route("/projects", func() app.Composer { return NewProjectsPage(session, api) })
	app.Route("/meetings", func() app.Composer { return NewMeetingsPage(session, api) })
	app.Route("/documents", func() app.Composer { return NewDocumentsPage(session, api) })
	app.RunWhenOnBrowser()

	http.Handle("/", &app.Handler{
		Name:        "Rogue Drones Workflow",
		Description: "Client relationship and workflow tracker",
		Styles:      []string{"/web/app.css"},
	})

	log.Println("webui listening on :8080")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatal(err)
	}
}
