package store

import (
	"context"
	"time"

	"github.com/rogue-drones/workflow/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MeetingFilter struct {
	ClientID    string
	ProjectID   string
	StartAfter  *time.Time
	StartBefore *time.Time
	Skip        int
	Limit       int
}

type MeetingStore struct {
	*Repository[models.Meeting]
	clients  *Repository[models.Client]
	projects *Repository[models.Project]
}

func NewMeetingStore(gdb *gorm.DB) *MeetingStore {
	return &MeetingStore{
		Repository: NewRepository[models.Meeting](gdb, "Meeting"),
		clients:    NewRepository[models.Client](gdb, "Client"),
		projects:   NewRepository[models.Project](gdb, "Project"),
	}
}

func (s *MeetingStore) Create(ctx context.Context, meeting *models.Meeting) error {
	if err := s.clients.Exists(ctx, meeting.ClientID); err != nil {
		return err
	}

	if meeting.ProjectID != nil {
		if err := s.projects.Exists(ctx, *meeting.ProjectID); err != nil {
			return err
		}
	}

	return s.Repository.Create(ctx, meeting)
}

// List returns meetings newest first by start time.
func (s *MeetingStore) List(ctx context.Context, f MeetingFilter) ([]models.Meeting, error) {
	q := ListQuery{Skip: f.Skip, Limit: f.Limit, Order: "start_time DESC"}

	if f.ClientID != "" {
		q.Scopes = append(q.Scopes, FilterEq("client_id", f.ClientID))
	}

	if f.ProjectID != "" {
		q.Scopes = append(q.Scopes, FilterEq("project_id", f.ProjectID))
	}

	if f.StartAfter != nil {
		q.Scopes = append(q.Scopes, FilterGte("start_time", *f.StartAfter))
	}

	if f.StartBefore != nil {
		q.Scopes = append(q.Scopes, FilterLte("start_time", *f.StartBefore))
	}

	return s.Repository.List(ctx, q)
}

func (s *MeetingStore) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*models.Meeting, error) {
	if clientID, ok := updates["client_id"].(string); ok {
		if err := s.clients.Exists(ctx, clientID); err != nil {
			return nil, err
		}
	}

	if projectID, ok := updates["project_id"].(string); ok {
		if err := s.projects.Exists(ctx, projectID); err != nil {
			return nil, err
		}
	}

	return s.Repository.Update(ctx, id, updates, expectedVersion)
}

// AppendKeyPoints appends in request order, no dedup.
func (s *MeetingStore) AppendKeyPoints(ctx context.Context, id string, points []models.KeyPoint) (*models.Meeting, error) {
	meeting, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	combined := append([]models.KeyPoint(meeting.KeyPoints), points...)

	return s.Repository.Update(ctx, id, map[string]interface{}{
		"key_points": datatypes.NewJSONSlice(combined),
	}, nil)
}

func (s *MeetingStore) SetTranscript(ctx context.Context, id, transcript string) (*models.Meeting, error) {
	return s.Repository.Update(ctx, id, map[string]interface{}{"transcript": transcript}, nil)
}

func (s *MeetingStore) SetRecording(ctx context.Context, id, recordingURL string) (*models.Meeting, error) {
	return s.Repository.Update(ctx, id, map[string]interface{}{"recording_url": recordingURL}, nil)
}
