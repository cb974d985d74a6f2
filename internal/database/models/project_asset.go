package models

import "time"

// ProjectImage is an opaque encoded image attached to a project
type ProjectImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProjectID    uint      `json:"project_id" gorm:"not null;index"`
	ImageData    string    `json:"image_data" gorm:"type:text;not null" validate:"required"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for ProjectImage
func (ProjectImage) TableName() string {
	return "project_images"
}

// ProjectLink is an external URL attached to a project
type ProjectLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"type:text;not null" validate:"required"`
	Label     *string   `json:"label" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for ProjectLink
func (ProjectLink) TableName() string {
	return "project_links"
}

// ProjectMember links a team member to a project. A pair appears at most once.
type ProjectMember struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProjectID    uint      `json:"project_id" gorm:"not null;uniqueIndex:idx_project_member"`
	TeamMemberID uint      `json:"team_member_id" gorm:"not null;uniqueIndex:idx_project_member;index"`
	CreatedAt    time.Time `json:"created_at"`

	Project    *Project    `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TeamMember *TeamMember `json:"-" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
