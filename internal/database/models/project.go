package models

import "gorm.io/datatypes"

// DefaultProjectStatus is applied when a project is created without a status
const DefaultProjectStatus = "planning"

// Project groups tasks, images, links and a set of team members
type Project struct {
	BaseModel
	Name           string                      `json:"name" gorm:"uniqueIndex;size:255;not null" validate:"required,max=255"`
	Description    string                      `json:"description" gorm:"type:text"`
	Status         string                      `json:"status" gorm:"size:50;not null" validate:"max=50"`
	Starred        bool                        `json:"starred" gorm:"not null;default:false"`
	MeetingMinutes string                      `json:"meeting_minutes" gorm:"type:text"`
	Channels       datatypes.JSONSlice[string] `json:"channels"`
	Applications   datatypes.JSONSlice[string] `json:"applications"`
	DeliveryDate   *datatypes.Date             `json:"delivery_date"`

	// Relationships
	Images      []ProjectImage  `json:"images,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Links       []ProjectLink   `json:"links,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Memberships []ProjectMember `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks       []Task          `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TeamNames returns the member names of the project in membership order.
// Memberships must be loaded with their TeamMember.
func (p *Project) TeamNames() []string {
	names := make([]string, 0, len(p.Memberships))
	for _, pm := range p.Memberships {
		if pm.TeamMember != nil {
			names = append(names, pm.TeamMember.Name)
		}
	}
	return names
}
