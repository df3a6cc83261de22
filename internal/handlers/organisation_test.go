package handlers_test

import (
	"net/http"
	"testing"
)

func TestDeleteOrganisationBlockedByClients(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	orgID := createOrganisation(t, r, token, "Acme")
	clientID := createClient(t, r, token, "Bob", "bob@example.com", orgID)

	w := doJSON(t, r, http.MethodDelete, "/organisations/"+orgID, token, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete with client: got %d, want 400", w.Code)
	}

	if decodeBody(t, w)["error"] != "Cannot delete organisation: 1 clients are associated with it" {
		t.Errorf("body %s", w.Body.String())
	}

	// Removing the client unblocks the delete.
	if w := doJSON(t, r, http.MethodDelete, "/clients/"+clientID, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete client: got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/organisations/"+orgID, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete empty organisation: got %d: %s", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, "/organisations/"+orgID, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("organisation still present after delete: got %d", w.Code)
	}
}

func TestCreateOrganisationDuplicateName(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	createOrganisation(t, r, token, "Acme")

	w := doJSON(t, r, http.MethodPost, "/organisations", token, map[string]interface{}{"name": "Acme"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate name: got %d, want 400", w.Code)
	}
}

func TestOrganisationSocialMediaRoundTrip(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/organisations", token, map[string]interface{}{
		"name":     "Acme",
		"industry": "aerospace",
		"social_media": map[string]string{
			"linkedin": "https://linkedin.com/company/acme",
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}

	id := decodeBody(t, w)["_id"].(string)

	got := decodeBody(t, doJSON(t, r, http.MethodGet, "/organisations/"+id, token, nil))

	social, ok := got["social_media"].(map[string]interface{})

	if !ok || social["linkedin"] != "https://linkedin.com/company/acme" {
		t.Errorf("social_media = %v", got["social_media"])
	}
}

func TestListOrganisationsFilterByIndustry(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r)

	doJSON(t, r, http.MethodPost, "/organisations", token, map[string]interface{}{"name": "Aero Co", "industry": "aerospace"})
	doJSON(t, r, http.MethodPost, "/organisations", token, map[string]interface{}{"name": "Farm Co", "industry": "agriculture"})

	w := doJSON(t, r, http.MethodGet, "/organisations?industry=aerospace", token, nil)

	records := decodeList(t, w)

	if len(records) != 1 || records[0]["name"] != "Aero Co" {
		t.Errorf("filtered list = %s", w.Body.String())
	}
}
