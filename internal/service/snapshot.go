package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"

	"gorm.io/datatypes"
)

// SnapshotVersion is stamped on every exported snapshot
const SnapshotVersion = "2.5.0"

const dateLayout = "2006-01-02"

// Snapshot is the whole domain graph as one document. A nil TeamMembers or
// Projects slice means the key was absent from the incoming document.
type Snapshot struct {
	TeamMembers []MemberRecord  `json:"teamMembers" validate:"dive"`
	Projects    []ProjectRecord `json:"projects" validate:"dive"`
	ExportDate  string          `json:"exportDate,omitempty"`
	Version     string          `json:"version,omitempty"`
}

// MemberRecord is a team member on the wire. Projects is derived on export
// and ignored on import.
type MemberRecord struct {
	ID        uint     `json:"id,omitempty"`
	Name      string   `json:"name" validate:"required,max=255"`
	Role      *string  `json:"role,omitempty" validate:"omitnil,max=100"`
	Skills    []string `json:"skills"`
	Workload  *int     `json:"workload,omitempty" validate:"omitnil,min=0,max=100"`
	Projects  []string `json:"projects"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// ProjectRecord is a project with every embedded collection
type ProjectRecord struct {
	ID             uint          `json:"id,omitempty"`
	Name           string        `json:"name" validate:"required,max=255"`
	Description    *string       `json:"description,omitempty"`
	Status         *string       `json:"status,omitempty" validate:"omitnil,max=50"`
	Starred        *bool         `json:"starred,omitempty"`
	MeetingMinutes *string       `json:"meetingMinutes,omitempty"`
	Channels       []string      `json:"channels,omitempty"`
	Applications   []string      `json:"applications,omitempty"`
	DeliveryDate   *string       `json:"deliveryDate,omitempty"`
	Team           []string      `json:"team"`
	Images         []ImageRecord `json:"images" validate:"dive"`
	Links          []LinkRecord  `json:"links" validate:"dive"`
	Tasks          []TaskRecord  `json:"tasks" validate:"dive"`
	CreatedAt      string        `json:"created_at,omitempty"`
}

// ImageRecord is a project image. A bare JSON string is accepted as the
// image data.
type ImageRecord struct {
	ID           uint   `json:"id,omitempty"`
	ImageData    string `json:"image_data" validate:"required"`
	DisplayOrder int    `json:"display_order"`
}

func (r *ImageRecord) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*r = ImageRecord{ImageData: raw}
		return nil
	}
	type plain ImageRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ImageRecord(p)
	return nil
}

// LinkRecord is a project link
type LinkRecord struct {
	ID    uint    `json:"id,omitempty"`
	URL   string  `json:"url" validate:"required"`
	Label *string `json:"label"`
}

// TaskRecord is a task with its subtasks. ID is emitted on export and
// ignored on import.
type TaskRecord struct {
	ID        uint            `json:"id,omitempty"`
	Text      *string         `json:"text" validate:"required"`
	Completed bool            `json:"completed"`
	StartDate *string         `json:"startDate"`
	EndDate   *string         `json:"endDate"`
	Assignee  *string         `json:"assignee"`
	Subtasks  []SubtaskRecord `json:"subtasks" validate:"dive"`
}

// SubtaskRecord is a subtask
type SubtaskRecord struct {
	ID        uint    `json:"id,omitempty"`
	Text      *string `json:"text" validate:"required"`
	Completed bool    `json:"completed"`
	Assignee  *string `json:"assignee"`
}

// ParseSnapshot decodes a snapshot document. Anything that is not a JSON
// object is rejected.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, apperrors.ErrNoSnapshotData
	}
	if data[0] != '{' || !json.Valid(data) {
		return nil, apperrors.ErrInvalidSnapshot
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
		}
		return nil, apperrors.NewValidationError("", err.Error())
	}
	return &snap, nil
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp, keeping the date
// part. Nil or empty means no date.
func parseDate(field string, value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, *value)
		if tsErr != nil {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("invalid date %q", *value))
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	date := datatypes.Date(t)
	return &date, nil
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toMemberRecord(m *models.TeamMember) MemberRecord {
	role, workload := m.Role, m.Workload
	return MemberRecord{
		ID:        m.ID,
		Name:      m.Name,
		Role:      &role,
		Skills:    append([]string{}, m.Skills...),
		Workload:  &workload,
		Projects:  m.ProjectNames(),
		CreatedAt: formatTimestamp(m.CreatedAt),
	}
}

func toProjectRecord(p *models.Project) ProjectRecord {
	description, status, starred, minutes := p.Description, p.Status, p.Starred, p.MeetingMinutes
	rec := ProjectRecord{
		ID:             p.ID,
		Name:           p.Name,
		Description:    &description,
		Status:         &status,
		Starred:        &starred,
		MeetingMinutes: &minutes,
		DeliveryDate:   formatDate(p.DeliveryDate),
		Team:           p.TeamNames(),
		Images:         make([]ImageRecord, 0, len(p.Images)),
		Links:          make([]LinkRecord, 0, len(p.Links)),
		Tasks:          make([]TaskRecord, 0, len(p.Tasks)),
		CreatedAt:      formatTimestamp(p.CreatedAt),
	}
	if p.Channels != nil {
		rec.Channels = append([]string{}, p.Channels...)
	}
	if p.Applications != nil {
		rec.Applications = append([]string{}, p.Applications...)
	}
	for _, img := range p.Images {
		rec.Images = append(rec.Images, ImageRecord{ID: img.ID, ImageData: img.ImageData, DisplayOrder: img.DisplayOrder})
	}
	for _, link := range p.Links {
		rec.Links = append(rec.Links, LinkRecord{ID: link.ID, URL: link.URL, Label: link.Label})
	}
	for i := range p.Tasks {
		rec.Tasks = append(rec.Tasks, toTaskRecord(&p.Tasks[i]))
	}
	return rec
}

func toTaskRecord(t *models.Task) TaskRecord {
	text := t.Text
	rec := TaskRecord{
		ID:        t.ID,
		Text:      &text,
		Completed: t.Completed,
		StartDate: formatDate(t.StartDate),
		EndDate:   formatDate(t.EndDate),
		Assignee:  t.AssigneeName(),
		Subtasks:  make([]SubtaskRecord, 0, len(t.Subtasks)),
	}
	for i := range t.Subtasks {
		rec.Subtasks = append(rec.Subtasks, toSubtaskRecord(&t.Subtasks[i]))
	}
	return rec
}

func toSubtaskRecord(s *models.Subtask) SubtaskRecord {
	text := s.Text
	return SubtaskRecord{
		ID:        s.ID,
		Text:      &text,
		Completed: s.Completed,
		Assignee:  s.AssigneeName(),
	}
}
