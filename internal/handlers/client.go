package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/store"
	"github.com/rogue-drones/workflow/internal/types"
)

type CreateClientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	OrganisationID *string `json:"organisation_id"`
	Notes          string  `json:"notes"`
	InitialQuery   string  `json:"initial_query"`
}

// Update requests use pointer fields: absent fields are left untouched.
type UpdateClientRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	OrganisationID  *string `json:"organisation_id"`
	Notes           *string `json:"notes"`
	InitialQuery    *string `json:"initial_query"`
	ExpectedVersion *int    `json:"expected_version"`
}

func CreateClient(ctx *gin.Context) {
	var req CreateClientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	client := models.Client{
		Name:           req.Name,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		OrganisationID: req.OrganisationID,
		Notes:          req.Notes,
		InitialQuery:   req.InitialQuery,
	}

	clients := store.NewClientStore(db.DB)

	if err := clients.Create(ctx.Request.Context(), &client); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, client)
}

func ListClients(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)

	clients := store.NewClientStore(db.DB)

	records, err := clients.List(ctx.Request.Context(), store.ClientFilter{
		OrganisationID: ctx.Query("organisation_id"),
		Skip:           skip,
		Limit:          limit,
	})

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func GetClient(ctx *gin.Context) {
	clients := store.NewClientStore(db.DB)

	client, err := clients.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

func UpdateClient(ctx *gin.Context) {
	var req UpdateClientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if req.OrganisationID != nil {
		updates["organisation_id"] = *req.OrganisationID
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if req.InitialQuery != nil {
		updates["initial_query"] = *req.InitialQuery
	}

	clients := store.NewClientStore(db.DB)

	client, err := clients.Update(ctx.Request.Context(), ctx.Param("id"), updates, req.ExpectedVersion)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

func DeleteClient(ctx *gin.Context) {
	clients := store.NewClientStore(db.DB)

	if err := clients.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
