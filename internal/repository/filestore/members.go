package filestore

import (
	"cmp"
	"slices"

	"resource-manager-backend/internal/database/models"
	"resource-manager-backend/internal/repository"

	"gorm.io/gorm"
)

var (
	_ repository.Store                         = (*Store)(nil)
	_ repository.Store                         = (*session)(nil)
	_ repository.TeamMemberRepositoryInterface = (*memberRepository)(nil)
)

type memberRepository struct {
	*session
}

// withProjects attaches the member's memberships, ordered by membership id
func (r *memberRepository) withProjects(doc *document, m memberDoc) models.TeamMember {
	member := doc.memberModel(m)
	member.Memberships = []models.ProjectMember{}
	for _, p := range doc.Projects {
		for _, pm := range p.Team {
			if pm.MemberID != m.ID {
				continue
			}
			project := projectScalars(p)
			member.Memberships = append(member.Memberships, models.ProjectMember{
				ID: pm.ID, ProjectID: p.ID, TeamMemberID: m.ID, CreatedAt: pm.CreatedAt, Project: &project,
			})
		}
	}
	slices.SortFunc(member.Memberships, func(a, b models.ProjectMember) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return member
}

func (r *memberRepository) Create(member *models.TeamMember) error {
	return r.write(func(doc *document) error {
		if _, taken := doc.memberByName(member.Name); taken {
			return gorm.ErrDuplicatedKey
		}
		now := r.now()
		member.ID = doc.nextID()
		member.CreatedAt, member.UpdatedAt = now, now
		doc.TeamMembers = append(doc.TeamMembers, memberDoc{
			ID:        member.ID,
			Name:      member.Name,
			Role:      member.Role,
			Skills:    append([]string{}, member.Skills...),
			Workload:  member.Workload,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	})
}

func (r *memberRepository) GetByID(id uint) (*models.TeamMember, error) {
	var out *models.TeamMember
	err := r.read(func(doc *document) error {
		i, ok := doc.member(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		m := r.withProjects(doc, doc.TeamMembers[i])
		out = &m
		return nil
	})
	return out, err
}

func (r *memberRepository) GetByName(name string) (*models.TeamMember, error) {
	var out *models.TeamMember
	err := r.read(func(doc *document) error {
		i, ok := doc.memberByName(name)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		m := r.withProjects(doc, doc.TeamMembers[i])
		out = &m
		return nil
	})
	return out, err
}

func (r *memberRepository) GetAll() ([]models.TeamMember, error) {
	var out []models.TeamMember
	err := r.read(func(doc *document) error {
		out = make([]models.TeamMember, 0, len(doc.TeamMembers))
		for _, m := range doc.TeamMembers {
			out = append(out, r.withProjects(doc, m))
		}
		return nil
	})
	return out, err
}

func (r *memberRepository) Update(member *models.TeamMember) error {
	return r.write(func(doc *document) error {
		i, ok := doc.member(member.ID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if j, taken := doc.memberByName(member.Name); taken && j != i {
			return gorm.ErrDuplicatedKey
		}
		now := r.now()
		m := &doc.TeamMembers[i]
		m.Name = member.Name
		m.Role = member.Role
		m.Skills = append([]string{}, member.Skills...)
		m.Workload = member.Workload
		m.UpdatedAt = now
		member.UpdatedAt = now
		return nil
	})
}

func (r *memberRepository) Delete(id uint) error {
	return r.write(func(doc *document) error {
		i, ok := doc.member(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		doc.TeamMembers = slices.Delete(doc.TeamMembers, i, i+1)
		for _, p := range doc.Projects {
			p.Team = slices.DeleteFunc(p.Team, func(pm membershipDoc) bool { return pm.MemberID == id })
			for _, t := range p.Tasks {
				if t.AssigneeID != nil && *t.AssigneeID == id {
					t.AssigneeID = nil
				}
				for j := range t.Subtasks {
					if s := &t.Subtasks[j]; s.AssigneeID != nil && *s.AssigneeID == id {
						s.AssigneeID = nil
					}
				}
			}
		}
		return nil
	})
}

func (r *memberRepository) CountProjects(id uint) (int64, error) {
	var count int64
	err := r.read(func(doc *document) error {
		for _, p := range doc.Projects {
			for _, pm := range p.Team {
				if pm.MemberID == id {
					count++
				}
			}
		}
		return nil
	})
	return count, err
}
