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

type CreateMeetingRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	ClientID    string            `json:"client_id" binding:"required"`
	ProjectID   *string           `json:"project_id"`
	StartTime   time.Time         `json:"start_time" binding:"required"`
	EndTime     *time.Time        `json:"end_time"`
	Location    string            `json:"location"`
	Virtual     *bool             `json:"virtual"`
	MeetingURL  string            `json:"meeting_url" binding:"omitempty,url"`
	Attendees   []models.Attendee `json:"attendees"`
	Notes       string            `json:"notes"`
}

type UpdateMeetingRequest struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	ClientID        *string            `json:"client_id"`
	ProjectID       *string            `json:"project_id"`
	StartTime       *time.Time         `json:"start_time"`
	EndTime         *time.Time         `json:"end_time"`
	Location        *string            `json:"location"`
	Virtual         *bool              `json:"virtual"`
	MeetingURL      *string            `json:"meeting_url" binding:"omitempty,url"`
	Attendees       *[]models.Attendee `json:"attendees"`
	Notes           *string            `json:"notes"`
	ExpectedVersion *int               `json:"expected_version"`
}

type TranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type RecordingRequest struct {
	RecordingURL string `json:"recording_url" binding:"required,url"`
}

func CreateMeeting(ctx *gin.Context) {
	var req CreateMeetingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	// Meetings are virtual unless the request says otherwise.
	virtual := true

	if req.Virtual != nil {
		virtual = *req.Virtual
	}

	meeting := models.Meeting{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Virtual:     virtual,
		MeetingURL:  req.MeetingURL,
		Attendees:   datatypes.NewJSONSlice(req.Attendees),
		Notes:       req.Notes,
	}

	meetings := store.NewMeetingStore(db.DB)

	if err := meetings.Create(ctx.Request.Context(), &meeting); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, meeting)
}

func ListMeetings(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)

	filter := store.MeetingFilter{
		ClientID:  ctx.Query("client_id"),
		ProjectID: ctx.Query("project_id"),
		Skip:      skip,
		Limit:     limit,
	}

	if raw := ctx.Query("start_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			RespondError(ctx, types.NewValidation("Invalid start_after: %q", raw))
			return
		}
		filter.StartAfter = &t
	}

	if raw := ctx.Query("start_before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			RespondError(ctx, types.NewValidation("Invalid start_before: %q", raw))
			return
		}
		filter.StartBefore = &t
	}

	meetings := store.NewMeetingStore(db.DB)

	records, err := meetings.List(ctx.Request.Context(), filter)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func GetMeeting(ctx *gin.Context) {
	meetings := store.NewMeetingStore(db.DB)

	meeting, err := meetings.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

func UpdateMeeting(ctx *gin.Context) {
	var req UpdateMeetingRequest

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

	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}

	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}

	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.Virtual != nil {
		updates["virtual"] = *req.Virtual
	}

	if req.MeetingURL != nil {
		updates["meeting_url"] = *req.MeetingURL
	}

	if req.Attendees != nil {
		updates["attendees"] = datatypes.NewJSONSlice(*req.Attendees)
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	meetings := store.NewMeetingStore(db.DB)

	meeting, err := meetings.Update(ctx.Request.Context(), ctx.Param("id"), updates, req.ExpectedVersion)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

func DeleteMeeting(ctx *gin.Context) {
	meetings := store.NewMeetingStore(db.DB)

	if err := meetings.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}

// AddTranscript overwrites the whole transcript field.
func AddTranscript(ctx *gin.Context) {
	var req TranscriptRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	meetings := store.NewMeetingStore(db.DB)

	meeting, err := meetings.SetTranscript(ctx.Request.Context(), ctx.Param("id"), req.Transcript)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

// AddKeyPoints appends to the key_points list; the body is a JSON array.
func AddKeyPoints(ctx *gin.Context) {
	var points []models.KeyPoint

	if err := ctx.ShouldBindJSON(&points); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	meetings := store.NewMeetingStore(db.DB)

	meeting, err := meetings.AppendKeyPoints(ctx.Request.Context(), ctx.Param("id"), points)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

// AddRecording overwrites the recording URL.
func AddRecording(ctx *gin.Context) {
	var req RecordingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	meetings := store.NewMeetingStore(db.DB)

	meeting, err := meetings.SetRecording(ctx.Request.Context(), ctx.Param("id"), req.RecordingURL)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}
