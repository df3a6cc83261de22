package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/store"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/datatypes"
)

type CreateOrganisationRequest struct {
	Name        string            `json:"name" binding:"required"`
	Website     string            `json:"website" binding:"omitempty,url"`
	Industry    string            `json:"industry"`
	Location    string            `json:"location"`
	SocialMedia map[string]string `json:"social_media"`
	Notes       string            `json:"notes"`
}

type UpdateOrganisationRequest struct {
	Name            *string            `json:"name"`
	Website         *string            `json:"website" binding:"omitempty,url"`
	Industry        *string            `json:"industry"`
	Location        *string            `json:"location"`
	SocialMedia     *map[string]string `json:"social_media"`
	Notes           *string            `json:"notes"`
	ExpectedVersion *int               `json:"expected_version"`
}

func socialMediaMap(links map[string]string) datatypes.JSONMap {
	if links == nil {
		return nil
	}

	m := make(datatypes.JSONMap, len(links))

	for k, v := range links {
		m[k] = v
	}

	return m
}

func CreateOrganisation(ctx *gin.Context) {
	var req CreateOrganisationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	org := models.Organisation{
		Name:        req.Name,
		Website:     req.Website,
		Industry:    req.Industry,
		Location:    req.Location,
		SocialMedia: socialMediaMap(req.SocialMedia),
		Notes:       req.Notes,
	}

	orgs := store.NewOrganisationStore(db.DB)

	if err := orgs.Create(ctx.Request.Context(), &org); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, org)
}

func ListOrganisations(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)

	orgs := store.NewOrganisationStore(db.DB)

	records, err := orgs.List(ctx.Request.Context(), store.OrganisationFilter{
		Industry: ctx.Query("industry"),
		Location: ctx.Query("location"),
		Skip:     skip,
		Limit:    limit,
	})

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func GetOrganisation(ctx *gin.Context) {
	orgs := store.NewOrganisationStore(db.DB)

	org, err := orgs.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, org)
}

func UpdateOrganisation(ctx *gin.Context) {
	var req UpdateOrganisationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Website != nil {
		updates["website"] = *req.Website
	}

	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.SocialMedia != nil {
		updates["social_media"] = socialMediaMap(*req.SocialMedia)
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	orgs := store.NewOrganisationStore(db.DB)

	org, err := orgs.Update(ctx.Request.Context(), ctx.Param("id"), updates, req.ExpectedVersion)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, org)
}

func DeleteOrganisation(ctx *gin.Context) {
	orgs := store.NewOrganisationStore(db.DB)

	if err := orgs.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Organisation deleted successfully"})
}
