package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/store"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/datatypes"
)

type CreateProjectRequest struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	ClientID        string             `json:"client_id" binding:"required"`
	OrganisationID  *string            `json:"organisation_id"`
	Status          string             `json:"status"`
	Budget          *float64           `json:"budget"`
	StartDate       *time.Time         `json:"start_date"`
	EndDate         *time.Time         `json:"end_date"`
	Milestones      []models.Milestone `json:"milestones"`
	AssessmentScore *int               `json:"assessment_score"`
	Notes           string             `json:"notes"`
}

type UpdateProjectRequest struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	ClientID        *string             `json:"client_id"`
	OrganisationID  *string             `json:"organisation_id"`
	Status          *string             `json:"status"`
	Budget          *float64            `json:"budget"`
	StartDate       *time.Time          `json:"start_date"`
	EndDate         *time.Time          `json:"end_date"`
	Milestones      *[]models.Milestone `json:"milestones"`
	AssessmentScore *int                `json:"assessment_score"`
	Notes           *string             `json:"notes"`
	ExpectedVersion *int                `json:"expected_version"`
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	status := req.Status

	if status == "" {
		status = types.DefaultProjectStatus
	}

	if !types.ValidProjectStatus(status) {
		RespondError(ctx, types.NewValidation("Invalid project status: %q", status))
		return
	}

	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		ClientID:        req.ClientID,
		OrganisationID:  req.OrganisationID,
		Status:          status,
		Budget:          req.Budget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Milestones:      datatypes.NewJSONSlice(req.Milestones),
		AssessmentScore: req.AssessmentScore,
		Notes:           req.Notes,
	}

	projects := store.NewProjectStore(db.DB)

	if err := projects.Create(ctx.Request.Context(), &project); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func ListProjects(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)

	projects := store.NewProjectStore(db.DB)

	records, err := projects.List(ctx.Request.Context(), store.ProjectFilter{
		ClientID:       ctx.Query("client_id"),
		OrganisationID: ctx.Query("organisation_id"),
		Status:         ctx.Query("status"),
		Skip:           skip,
		Limit:          limit,
	})

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func GetProject(ctx *gin.Context) {
	projects := store.NewProjectStore(db.DB)

	project, err := projects.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func UpdateProject(ctx *gin.Context) {
	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}

	if req.OrganisationID != nil {
		updates["organisation_id"] = *req.OrganisationID
	}

	if req.Status != nil {
		if !types.ValidProjectStatus(*req.Status) {
			RespondError(ctx, types.NewValidation("Invalid project status: %q", *req.Status))
			return
		}
		updates["status"] = *req.Status
	}

	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}

	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}

	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	if req.Milestones != nil {
		updates["milestones"] = datatypes.NewJSONSlice(*req.Milestones)
	}

	if req.AssessmentScore != nil {
		updates["assessment_score"] = *req.AssessmentScore
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	projects := store.NewProjectStore(db.DB)

	project, err := projects.Update(ctx.Request.Context(), ctx.Param("id"), updates, req.ExpectedVersion)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func DeleteProject(ctx *gin.Context) {
	projects := store.NewProjectStore(db.DB)

	if err := projects.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
