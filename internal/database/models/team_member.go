package models

import "gorm.io/datatypes"

// TeamMember is a person that can be put on projects and assigned tasks.
// Name is unique but renamable; every reference to a member goes through ID.
type TeamMember struct {
	BaseModel
	Name     string                      `json:"name" gorm:"uniqueIndex;size:255;not null" validate:"required,max=255"`
	Role     string                      `json:"role" gorm:"size:100;not null" validate:"required,max=100"`
	Skills   datatypes.JSONSlice[string] `json:"skills"`
	Workload int                         `json:"workload" gorm:"not null;default:0" validate:"min=0,max=100"`

	// Relationships
	Memberships []ProjectMember `json:"-" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// ProjectNames returns the names of the projects the member belongs to, in
// membership order. Memberships must be loaded with their Project.
func (m *TeamMember) ProjectNames() []string {
	names := make([]string, 0, len(m.Memberships))
	for _, pm := range m.Memberships {
		if pm.Project != nil {
			names = append(names, pm.Project.Name)
		}
	}
	return names
}
