package store

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})

	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := gdb.DB()

	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Organisation{},
		&models.Client{},
		&models.Project{},
		&models.Meeting{},
		&models.Document{},
	)

	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	gdb := setupDB(t)
	repo := NewRepository[models.Client](gdb, "Client")

	_, err := repo.GetByID(context.Background(), "missing")

	var notFound *types.NotFoundError

	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}

	if notFound.Error() != "Client not found" {
		t.Errorf("detail = %q", notFound.Error())
	}
}

func TestRepositoryUpdateIsPartial(t *testing.T) {
	gdb := setupDB(t)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	client := &models.Client{Name: "Bob", Email: "bob@example.com", Phone: "021 555 000"}

	if err := clients.Create(ctx, client); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := clients.Update(ctx, client.ID, map[string]interface{}{"notes": "met at expo"}, nil)

	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Notes != "met at expo" {
		t.Errorf("notes = %q", updated.Notes)
	}

	if updated.Name != "Bob" || updated.Email != "bob@example.com" || updated.Phone != "021 555 000" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	if updated.Version != 2 {
		t.Errorf("version = %d, want 2", updated.Version)
	}
}

func TestRepositoryUpdateVersionCheck(t *testing.T) {
	gdb := setupDB(t)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	client := &models.Client{Name: "Bob", Email: "bob@example.com"}

	if err := clients.Create(ctx, client); err != nil {
		t.Fatalf("create: %v", err)
	}

	one := 1

	if _, err := clients.Update(ctx, client.ID, map[string]interface{}{"notes": "first"}, &one); err != nil {
		t.Fatalf("update at version 1: %v", err)
	}

	_, err := clients.Update(ctx, client.ID, map[string]interface{}{"notes": "stale"}, &one)

	var conflict *types.ConflictError

	if !errors.As(err, &conflict) {
		t.Fatalf("stale update err = %v, want ConflictError", err)
	}

	// No expected version means last writer wins, as before.
	if _, err := clients.Update(ctx, client.ID, map[string]interface{}{"notes": "blind"}, nil); err != nil {
		t.Fatalf("blind update: %v", err)
	}
}

func TestClientStoreChecksParentAndUniqueness(t *testing.T) {
	gdb := setupDB(t)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	missingOrg := "missing-org"
	err := clients.Create(ctx, &models.Client{Name: "Bob", Email: "bob@example.com", OrganisationID: &missingOrg})

	var notFound *types.NotFoundError

	if !errors.As(err, &notFound) || notFound.Resource != "Organisation" {
		t.Fatalf("err = %v, want Organisation not found", err)
	}

	if err := clients.Create(ctx, &models.Client{Name: "Bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err = clients.Create(ctx, &models.Client{Name: "Bob again", Email: "bob@example.com"})

	var conflict *types.ConflictError

	if !errors.As(err, &conflict) {
		t.Fatalf("duplicate email err = %v, want ConflictError", err)
	}
}

func TestOrganisationDeleteGuardCountsClients(t *testing.T) {
	gdb := setupDB(t)
	orgs := NewOrganisationStore(gdb)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	org := &models.Organisation{Name: "Acme"}

	if err := orgs.Create(ctx, org); err != nil {
		t.Fatalf("create org: %v", err)
	}

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := clients.Create(ctx, &models.Client{Name: "C", Email: email, OrganisationID: &org.ID}); err != nil {
			t.Fatalf("create client: %v", err)
		}
	}

	err := orgs.Delete(ctx, org.ID)

	var conflict *types.ConflictError

	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}

	if conflict.Error() != "Cannot delete organisation: 2 clients are associated with it" {
		t.Errorf("detail = %q", conflict.Error())
	}
}

func TestDocumentAddVersionAppendsMonotonically(t *testing.T) {
	gdb := setupDB(t)
	documents := NewDocumentStore(gdb)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	client := &models.Client{Name: "Bob", Email: "bob@example.com"}

	if err := clients.Create(ctx, client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	doc := &models.Document{
		Title:        "Proposal",
		DocumentType: "proposal",
		ClientID:     client.ID,
		Status:       "draft",
		CreatedBy:    "author-1",
	}

	if err := documents.Create(ctx, doc, "v1", ""); err != nil {
		t.Fatalf("create document: %v", err)
	}

	for i, content := range []string{"v2", "v3"} {
		updated, err := documents.AddVersion(ctx, doc.ID, content, "", "author-1")

		if err != nil {
			t.Fatalf("add version %d: %v", i+2, err)
		}

		if updated.CurrentVersion != i+2 {
			t.Errorf("current_version = %d, want %d", updated.CurrentVersion, i+2)
		}

		if len(updated.Versions) != i+2 {
			t.Errorf("versions length = %d, want %d", len(updated.Versions), i+2)
		}

		last := updated.Versions[len(updated.Versions)-1]

		if last.VersionNumber != updated.CurrentVersion || last.Content != content {
			t.Errorf("last version = %+v", last)
		}

		if updated.Versions[0].Content != "v1" || updated.Versions[0].Notes != "Initial version" {
			t.Errorf("initial version mutated: %+v", updated.Versions[0])
		}
	}
}

func TestDocumentSignIsOneWay(t *testing.T) {
	gdb := setupDB(t)
	documents := NewDocumentStore(gdb)
	clients := NewClientStore(gdb)
	ctx := context.Background()

	client := &models.Client{Name: "Bob", Email: "bob@example.com"}

	if err := clients.Create(ctx, client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	doc := &models.Document{
		Title:             "Contract",
		DocumentType:      "contract",
		ClientID:          client.ID,
		Status:            "draft",
		RequiresSignature: true,
		CreatedBy:         "author-1",
	}

	if err := documents.Create(ctx, doc, "terms", ""); err != nil {
		t.Fatalf("create document: %v", err)
	}

	signed, err := documents.Sign(ctx, doc.ID, "signer-1")

	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if !signed.Signed || signed.SignedBy == nil || *signed.SignedBy != "signer-1" || signed.SignedAt == nil {
		t.Errorf("signed document = %+v", signed)
	}

	if _, err := documents.Sign(ctx, doc.ID, "signer-2"); err == nil {
		t.Error("second sign succeeded, want conflict")
	}

	if err := documents.Delete(ctx, doc.ID); err == nil {
		t.Error("delete of signed document succeeded, want conflict")
	}
}
