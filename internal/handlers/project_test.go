package handlers_test

import (
	"net/http"
	"testing"
)

func TestCreateProjectRequiresExistingClient(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/projects", token, map[string]interface{}{
		"title":     "Drone survey",
		"client_id": "no-such-client",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}

	if decodeBody(t, w)["error"] != "Client not found" {
		t.Errorf("body %s", w.Body.String())
	}
}

func TestCreateProjectDefaultsAndStatusValidation(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	clientID := createClient(t, r, token, "Bob", "bob@example.com", "")

	w := doJSON(t, r, http.MethodPost, "/projects", token, map[string]interface{}{
		"title":     "Drone survey",
		"client_id": clientID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}

	if decodeBody(t, w)["status"] != "assessment" {
		t.Errorf("default status = %v, want assessment", decodeBody(t, w)["status"])
	}

	bad := doJSON(t, r, http.MethodPost, "/projects", token, map[string]interface{}{
		"title":     "Bad status",
		"client_id": clientID,
		"status":    "halfway-done",
	})

	if bad.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid status: got %d, want 422", bad.Code)
	}
}

func TestProjectMilestonesRoundTrip(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	clientID := createClient(t, r, token, "Bob", "bob@example.com", "")

	w := doJSON(t, r, http.MethodPost, "/projects", token, map[string]interface{}{
		"title":     "Survey",
		"client_id": clientID,
		"milestones": []map[string]interface{}{
			{"title": "Site visit"},
			{"title": "Draft report", "description": "First pass"},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}

	id := decodeBody(t, w)["_id"].(string)

	got := decodeBody(t, doJSON(t, r, http.MethodGet, "/projects/"+id, token, nil))

	milestones, ok := got["milestones"].([]interface{})

	if !ok || len(milestones) != 2 {
		t.Fatalf("milestones = %v", got["milestones"])
	}

	first := milestones[0].(map[string]interface{})

	if first["title"] != "Site visit" || first["completed"] != false {
		t.Errorf("milestone[0] = %v", first)
	}
}

func TestDeleteProjectBlockedByDependents(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	clientID := createClient(t, r, token, "Bob", "bob@example.com", "")
	projectID := createProject(t, r, token, "Survey", clientID)

	// A document referencing the project blocks deletion.
	doc := doJSON(t, r, http.MethodPost, "/documents", token, map[string]interface{}{
		"title":         "Contract",
		"document_type": "contract",
		"client_id":     clientID,
		"project_id":    projectID,
		"content":       "Terms.",
	})

	if doc.Code != http.StatusCreated {
		t.Fatalf("create document: got %d: %s", doc.Code, doc.Body.String())
	}

	docID := decodeBody(t, doc)["_id"].(string)

	w := doJSON(t, r, http.MethodDelete, "/projects/"+projectID, token, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete with document: got %d, want 400", w.Code)
	}

	if decodeBody(t, w)["error"] != "Cannot delete project: 1 documents are associated with it" {
		t.Errorf("body %s", w.Body.String())
	}

	if w := doJSON(t, r, http.MethodDelete, "/documents/"+docID, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete document: got %d", w.Code)
	}

	// A meeting referencing the project blocks deletion too.
	meeting := doJSON(t, r, http.MethodPost, "/meetings", token, map[string]interface{}{
		"title":      "Kickoff",
		"client_id":  clientID,
		"project_id": projectID,
		"start_time": "2026-03-01T10:00:00Z",
	})

	if meeting.Code != http.StatusCreated {
		t.Fatalf("create meeting: got %d: %s", meeting.Code, meeting.Body.String())
	}

	meetingID := decodeBody(t, meeting)["_id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/projects/"+projectID, token, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete with meeting: got %d, want 400", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/meetings/"+meetingID, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete meeting: got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/projects/"+projectID, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete unblocked project: got %d: %s", w.Code, w.Body.String())
	}
}
