package filestore

import (
	"encoding/json"
	"time"

	"resource-manager-backend/internal/database/models"

	"gorm.io/datatypes"
)

// document is the on-disk layout. References between records are ids, so a
// rename touches exactly one record.
type document struct {
	NextID      uint          `json:"nextId"`
	TeamMembers []memberDoc   `json:"teamMembers"`
	Projects    []*projectDoc `json:"projects"`
}

type memberDoc struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Skills    []string  `json:"skills"`
	Workload  int       `json:"workload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type projectDoc struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	Starred        bool            `json:"starred"`
	MeetingMinutes string          `json:"meetingMinutes"`
	Channels       []string        `json:"channels,omitempty"`
	Applications   []string        `json:"applications,omitempty"`
	DeliveryDate   *time.Time      `json:"deliveryDate,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Team           []membershipDoc `json:"team"`
	Images         []imageDoc      `json:"images"`
	Links          []linkDoc       `json:"links"`
	Tasks          []*taskDoc      `json:"tasks"`
}

type membershipDoc struct {
	ID        uint      `json:"id"`
	MemberID  uint      `json:"memberId"`
	CreatedAt time.Time `json:"created_at"`
}

type imageDoc struct {
	ID           uint      `json:"id"`
	ImageData    string    `json:"image_data"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type linkDoc struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Label     *string   `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type taskDoc struct {
	ID           uint         `json:"id"`
	Text         string       `json:"text"`
	Completed    bool         `json:"completed"`
	StartDate    *time.Time   `json:"startDate,omitempty"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
	AssigneeID   *uint        `json:"assigneeId,omitempty"`
	DisplayOrder int          `json:"display_order"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Subtasks     []subtaskDoc `json:"subtasks"`
}

type subtaskDoc struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	AssigneeID   *uint     `json:"assigneeId,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func emptyDocument() *document {
	return &document{TeamMembers: []memberDoc{}, Projects: []*projectDoc{}}
}

// clone deep-copies the document so a transaction can work on it freely
func (d *document) clone() (*document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := emptyDocument()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *document) nextID() uint {
	d.NextID++
	return d.NextID
}

func (d *document) member(id uint) (int, bool) {
	for i := range d.TeamMembers {
		if d.TeamMembers[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (d *document) memberByName(name string) (int, bool) {
	for i := range d.TeamMembers {
		if d.TeamMembers[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

func (d *document) project(id uint) (*projectDoc, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (d *document) projectByName(name string) (*projectDoc, bool) {
	for _, p := range d.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (d *document) task(id uint) (*projectDoc, *taskDoc, bool) {
	for _, p := range d.Projects {
		for _, t := range p.Tasks {
			if t.ID == id {
				return p, t, true
			}
		}
	}
	return nil, nil, false
}

func (d *document) subtask(id uint) (*taskDoc, int, bool) {
	for _, p := range d.Projects {
		for _, t := range p.Tasks {
			for i := range t.Subtasks {
				if t.Subtasks[i].ID == id {
					return t, i, true
				}
			}
		}
	}
	return nil, -1, false
}

// assignable reports whether id is nil or names an existing member
func (d *document) assignable(id *uint) bool {
	if id == nil {
		return true
	}
	_, ok := d.member(*id)
	return ok
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	date := datatypes.Date(*t)
	return &date
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

func (d *document) memberModel(m memberDoc) models.TeamMember {
	return models.TeamMember{
		BaseModel: models.BaseModel{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Name:      m.Name,
		Role:      m.Role,
		Skills:    append(datatypes.JSONSlice[string]{}, m.Skills...),
		Workload:  m.Workload,
	}
}

// memberRef returns a detached copy of the member with the given id
func (d *document) memberRef(id *uint) *models.TeamMember {
	if id == nil {
		return nil
	}
	i, ok := d.member(*id)
	if !ok {
		return nil
	}
	m := d.memberModel(d.TeamMembers[i])
	return &m
}

func (d *document) subtaskModel(taskID uint, s subtaskDoc) models.Subtask {
	return models.Subtask{
		BaseModel:    models.BaseModel{ID: s.ID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt},
		TaskID:       taskID,
		Text:         s.Text,
		Completed:    s.Completed,
		AssigneeID:   copyID(s.AssigneeID),
		DisplayOrder: s.DisplayOrder,
		Assignee:     d.memberRef(s.AssigneeID),
	}
}

func (d *document) taskModel(projectID uint, t *taskDoc) models.Task {
	task := models.Task{
		BaseModel:    models.BaseModel{ID: t.ID, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt},
		ProjectID:    projectID,
		Text:         t.Text,
		Completed:    t.Completed,
		StartDate:    toDate(t.StartDate),
		EndDate:      toDate(t.EndDate),
		AssigneeID:   copyID(t.AssigneeID),
		DisplayOrder: t.DisplayOrder,
		Assignee:     d.memberRef(t.AssigneeID),
		Subtasks:     make([]models.Subtask, 0, len(t.Subtasks)),
	}
	for _, s := range sortedSubtasks(t.Subtasks) {
		task.Subtasks = append(task.Subtasks, d.subtaskModel(t.ID, s))
	}
	return task
}

// projectScalars converts a project without any of its collections
func projectScalars(p *projectDoc) models.Project {
	return models.Project{
		BaseModel:      models.BaseModel{ID: p.ID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		Starred:        p.Starred,
		MeetingMinutes: p.MeetingMinutes,
		Channels:       copyStrings(p.Channels),
		Applications:   copyStrings(p.Applications),
		DeliveryDate:   toDate(p.DeliveryDate),
	}
}

func (d *document) projectModel(p *projectDoc) models.Project {
	project := projectScalars(p)
	project.Images = make([]models.ProjectImage, 0, len(p.Images))
	project.Links = make([]models.ProjectLink, 0, len(p.Links))
	project.Memberships = make([]models.ProjectMember, 0, len(p.Team))
	project.Tasks = make([]models.Task, 0, len(p.Tasks))
	for _, img := range sortedImages(p.Images) {
		project.Images = append(project.Images, models.ProjectImage{
			ID: img.ID, ProjectID: p.ID, ImageData: img.ImageData, DisplayOrder: img.DisplayOrder, CreatedAt: img.CreatedAt,
		})
	}
	for _, link := range p.Links {
		project.Links = append(project.Links, models.ProjectLink{
			ID: link.ID, ProjectID: p.ID, URL: link.URL, Label: copyString(link.Label), CreatedAt: link.CreatedAt,
		})
	}
	for _, pm := range p.Team {
		memberID := pm.MemberID
		project.Memberships = append(project.Memberships, models.ProjectMember{
			ID: pm.ID, ProjectID: p.ID, TeamMemberID: pm.MemberID, CreatedAt: pm.CreatedAt,
			TeamMember: d.memberRef(&memberID),
		})
	}
	for _, t := range sortedTasks(p.Tasks) {
		project.Tasks = append(project.Tasks, d.taskModel(p.ID, t))
	}
	return project
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyStrings(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return nil
	}
	return append(datatypes.JSONSlice[string]{}, values...)
}
