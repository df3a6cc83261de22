package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/store"
	"github.com/rogue-drones/workflow/internal/types"
	"github.com/rogue-drones/workflow/internal/utils"
)

type CreateDocumentRequest struct {
	Title             string  `json:"title" binding:"required"`
	DocumentType      string  `json:"document_type" binding:"required"`
	ClientID          string  `json:"client_id" binding:"required"`
	ProjectID         *string `json:"project_id"`
	Status            string  `json:"status"`
	RequiresSignature bool    `json:"requires_signature"`
	Content           string  `json:"content" binding:"required"`
	Notes             string  `json:"notes"`
}

// NewVersionContent appends an immutable version alongside any plain field
// updates, mirroring the store's append-only history. Signature state is
// not settable here: signing has its own endpoint and is one-way.
type UpdateDocumentRequest struct {
	Title             *string `json:"title"`
	DocumentType      *string `json:"document_type"`
	ClientID          *string `json:"client_id"`
	ProjectID         *string `json:"project_id"`
	Status            *string `json:"status"`
	RequiresSignature *bool   `json:"requires_signature"`
	NewVersionContent *string `json:"new_version_content"`
	NewVersionNotes   *string `json:"new_version_notes"`
	ExpectedVersion   *int    `json:"expected_version"`
}

func CreateDocument(ctx *gin.Context) {
	var req CreateDocumentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	status := req.Status

	if status == "" {
		status = types.DefaultDocumentStatus
	}

	if !types.ValidDocumentStatus(status) {
		RespondError(ctx, types.NewValidation("Invalid document status: %q", status))
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc := models.Document{
		Title:             req.Title,
		DocumentType:      req.DocumentType,
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		Status:            status,
		RequiresSignature: req.RequiresSignature,
		CreatedBy:         currentUser.ID,
	}

	documents := store.NewDocumentStore(db.DB)

	if err := documents.Create(ctx.Request.Context(), &doc, req.Content, req.Notes); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, doc)
}

func ListDocuments(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)

	documents := store.NewDocumentStore(db.DB)

	records, err := documents.List(ctx.Request.Context(), store.DocumentFilter{
		ClientID:     ctx.Query("client_id"),
		ProjectID:    ctx.Query("project_id"),
		DocumentType: ctx.Query("document_type"),
		Status:       ctx.Query("status"),
		Skip:         skip,
		Limit:        limit,
	})

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func GetDocument(ctx *gin.Context) {
	documents := store.NewDocumentStore(db.DB)

	doc, err := documents.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

func UpdateDocument(ctx *gin.Context) {
	var req UpdateDocumentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.DocumentType != nil {
		updates["document_type"] = *req.DocumentType
	}

	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}

	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}

	if req.Status != nil {
		if !types.ValidDocumentStatus(*req.Status) {
			RespondError(ctx, types.NewValidation("Invalid document status: %q", *req.Status))
			return
		}
		updates["status"] = *req.Status
	}

	if req.RequiresSignature != nil {
		updates["requires_signature"] = *req.RequiresSignature
	}

	documents := store.NewDocumentStore(db.DB)

	doc, err := documents.Update(ctx.Request.Context(), ctx.Param("id"), updates, req.ExpectedVersion)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	if req.NewVersionContent != nil {
		currentUser, err := utils.GetCurrentUser(ctx)

		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		notes := ""

		if req.NewVersionNotes != nil {
			notes = *req.NewVersionNotes
		}

		doc, err = documents.AddVersion(ctx.Request.Context(), doc.ID, *req.NewVersionContent, notes, currentUser.ID)

		if err != nil {
			RespondError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, doc)
}

func DeleteDocument(ctx *gin.Context) {
	documents := store.NewDocumentStore(db.DB)

	if err := documents.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func SignDocument(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	documents := store.NewDocumentStore(db.DB)

	doc, err := documents.Sign(ctx.Request.Context(), ctx.Param("id"), currentUser.ID)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doc)
}
