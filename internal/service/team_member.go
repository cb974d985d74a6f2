package service

import (
	"errors"
	"fmt"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamMemberService handles business logic for team members
type TeamMemberService struct {
	store     repository.Store
	validator *validator.Validate
}

// Ensure TeamMemberService implements TeamMemberServiceInterface
var _ TeamMemberServiceInterface = (*TeamMemberService)(nil)

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(store repository.Store, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		store:     store,
		validator: validator,
	}
}

// CreateTeamMemberRequest represents the data needed to create a team member
type CreateTeamMemberRequest struct {
	Name     string   `json:"name" validate:"required,max=255" example:"Alice"`
	Role     string   `json:"role" validate:"required,max=100" example:"Developer"`
	Skills   []string `json:"skills"`
	Workload *int     `json:"workload" validate:"omitnil,min=0,max=100" example:"0"`
}

// UpdateTeamMemberRequest represents a partial update of a team member
type UpdateTeamMemberRequest struct {
	Name     *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Role     *string  `json:"role" validate:"omitnil,min=1,max=100"`
	Skills   []string `json:"skills"`
	Workload *int     `json:"workload" validate:"omitnil,min=0,max=100"`
}

// GetAll returns every team member ordered by id
func (s *TeamMemberService) GetAll() ([]MemberRecord, error) {
	members, err := s.store.Members().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	records := make([]MemberRecord, len(members))
	for i := range members {
		records[i] = toMemberRecord(&members[i])
	}
	return records, nil
}

// GetByID retrieves a team member by id
func (s *TeamMemberService) GetByID(id uint) (*MemberRecord, error) {
	member, err := s.store.Members().GetByID(id)
	if err != nil {
		return nil, memberLookupError(err)
	}
	rec := toMemberRecord(member)
	return &rec, nil
}

// Create creates a new team member
func (s *TeamMemberService) Create(req *CreateTeamMemberRequest) (*MemberRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.store.Members().GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{
		Name:   req.Name,
		Role:   req.Role,
		Skills: append([]string{}, req.Skills...),
	}
	if req.Workload != nil {
		member.Workload = *req.Workload
	}

	if err := s.store.Members().Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	rec := toMemberRecord(member)
	return &rec, nil
}

// Update applies the fields present in req. A rename only touches the
// member itself; teams and assignees refer to it by id.
func (s *TeamMemberService) Update(id uint, req *UpdateTeamMemberRequest) (*MemberRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.TeamMember
	err := s.store.Transaction(func(tx repository.Store) error {
		member, err := tx.Members().GetByID(id)
		if err != nil {
			return memberLookupError(err)
		}

		if req.Name != nil && *req.Name != member.Name {
			if _, err := tx.Members().GetByName(*req.Name); err == nil {
				return apperrors.ErrTeamMemberExists
			}
			member.Name = *req.Name
		}
		if req.Role != nil {
			member.Role = *req.Role
		}
		if req.Skills != nil {
			member.Skills = append([]string{}, req.Skills...)
		}
		if req.Workload != nil {
			member.Workload = *req.Workload
		}

		if err := tx.Members().Update(member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTeamMemberExists
			}
			return fmt.Errorf("failed to update team member: %w", err)
		}
		updated, err = tx.Members().GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	rec := toMemberRecord(updated)
	return &rec, nil
}

// Delete removes a team member. Its memberships go with it; tasks and
// subtasks assigned to it stay, unassigned.
func (s *TeamMemberService) Delete(id uint) error {
	err := s.store.Members().Delete(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrTeamMemberNotFound
	case err != nil:
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

func memberLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTeamMemberNotFound
	}
	return fmt.Errorf("failed to get team member: %w", err)
}

// refreshWorkload sets the member's workload to 25 per project, capped at 100
func refreshWorkload(tx repository.Store, memberID uint) error {
	count, err := tx.Members().CountProjects(memberID)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	member, err := tx.Members().GetByID(memberID)
	if err != nil {
		return memberLookupError(err)
	}
	member.Workload = min(int(count)*25, 100)
	if err := tx.Members().Update(member); err != nil {
		return fmt.Errorf("failed to update workload: %w", err)
	}
	return nil
}
