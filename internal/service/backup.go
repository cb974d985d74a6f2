package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/logger"
	"resource-manager-backend/internal/metrics"
	"resource-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BackupService exports the whole domain graph and applies incoming
// snapshots. Applies are serialised against each other and against
// exports, so an export never sees a half-applied snapshot.
type BackupService struct {
	store     repository.Store
	validator *validator.Validate
	now       func() time.Time

	mu sync.RWMutex
}

// Ensure BackupService implements BackupServiceInterface
var _ BackupServiceInterface = (*BackupService)(nil)

// NewBackupService creates a new BackupService
func NewBackupService(store repository.Store, validator *validator.Validate) *BackupService {
	return &BackupService{
		store:     store,
		validator: validator,
		now:       time.Now,
	}
}

// ReplaceResult reports what ApplyReplace created
type ReplaceResult struct {
	TeamMembers int `json:"teamMembers"`
	Projects    int `json:"projects"`
}

// MergeResult reports what ApplyMerge created and updated
type MergeResult struct {
	MembersCreated  int `json:"membersCreated"`
	MembersUpdated  int `json:"membersUpdated"`
	ProjectsCreated int `json:"projectsCreated"`
	ProjectsUpdated int `json:"projectsUpdated"`
}

// Created is the number of members and projects created
func (r *MergeResult) Created() int {
	return r.MembersCreated + r.ProjectsCreated
}

// Updated is the number of members and projects updated
func (r *MergeResult) Updated() int {
	return r.MembersUpdated + r.ProjectsUpdated
}

// Export returns the current state as a snapshot
func (s *BackupService) Export() (*Snapshot, error) {
	start := time.Now()
	snap, err := s.export()
	metrics.ObserveBackup(metrics.OpExport, start, err)
	return snap, err
}

func (s *BackupService) export() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var members []models.TeamMember
	var projects []models.Project
	err := s.store.View(func(tx repository.Store) error {
		var err error
		if members, err = tx.Members().GetAll(); err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		if projects, err = tx.Projects().GetAll(); err != nil {
			return fmt.Errorf("failed to load projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewStorageError("export", err)
	}

	snap := &Snapshot{
		TeamMembers: make([]MemberRecord, 0, len(members)),
		Projects:    make([]ProjectRecord, 0, len(projects)),
		ExportDate:  s.now().UTC().Format(time.RFC3339),
		Version:     SnapshotVersion,
	}
	for i := range members {
		snap.TeamMembers = append(snap.TeamMembers, toMemberRecord(&members[i]))
	}
	for i := range projects {
		snap.Projects = append(snap.Projects, toProjectRecord(&projects[i]))
	}
	return snap, nil
}

// ApplyReplace discards everything in the store and loads the snapshot in
// its place. Both top-level collections must be present. On any error the
// store is left as it was.
func (s *BackupService) ApplyReplace(snap *Snapshot) (*ReplaceResult, error) {
	start := time.Now()
	result, err := s.applyReplace(snap)
	metrics.ObserveBackup(metrics.OpReplace, start, err)
	if err != nil {
		return nil, err
	}
	metrics.AddRecords(metrics.OpReplace, "team_member", "created", result.TeamMembers)
	metrics.AddRecords(metrics.OpReplace, "project", "created", result.Projects)
	logger.New().WithFields(map[string]interface{}{
		"team_members": result.TeamMembers,
		"projects":     result.Projects,
	}).Info("Snapshot replaced store contents")
	return result, nil
}

func (s *BackupService) applyReplace(snap *Snapshot) (*ReplaceResult, error) {
	if snap == nil {
		return nil, apperrors.ErrNoSnapshotData
	}
	if snap.TeamMembers == nil || snap.Projects == nil {
		return nil, apperrors.ErrIncompleteSnapshot
	}
	if err := s.validator.Struct(snap); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Transaction(func(tx repository.Store) error {
		if err := tx.Purge(); err != nil {
			return fmt.Errorf("failed to purge store: %w", err)
		}
		a := newApplier(tx)
		for i := range snap.TeamMembers {
			if _, err := a.createMember(fmt.Sprintf("teamMembers[%d]", i), &snap.TeamMembers[i]); err != nil {
				return err
			}
		}
		for i := range snap.Projects {
			if _, err := a.createProject(fmt.Sprintf("projects[%d]", i), &snap.Projects[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, applyFailure("replace", err)
	}
	return &ReplaceResult{TeamMembers: len(snap.TeamMembers), Projects: len(snap.Projects)}, nil
}

// ApplyMerge upserts the snapshot's members and projects by name. Scalar
// fields absent from a record keep their stored value; an existing
// project's team and tasks are replaced wholesale while its images and
// links are kept. On any error the store is left as it was.
func (s *BackupService) ApplyMerge(snap *Snapshot) (*MergeResult, error) {
	start := time.Now()
	result, err := s.applyMerge(snap)
	metrics.ObserveBackup(metrics.OpMerge, start, err)
	if err != nil {
		return nil, err
	}
	metrics.AddRecords(metrics.OpMerge, "team_member", "created", result.MembersCreated)
	metrics.AddRecords(metrics.OpMerge, "team_member", "updated", result.MembersUpdated)
	metrics.AddRecords(metrics.OpMerge, "project", "created", result.ProjectsCreated)
	metrics.AddRecords(metrics.OpMerge, "project", "updated", result.ProjectsUpdated)
	logger.New().WithFields(map[string]interface{}{
		"created": result.Created(),
		"updated": result.Updated(),
	}).Info("Snapshot merged into store")
	return result, nil
}

func (s *BackupService) applyMerge(snap *Snapshot) (*MergeResult, error) {
	if snap == nil {
		return nil, apperrors.ErrNoSnapshotData
	}
	if err := s.validator.Struct(snap); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &MergeResult{}
	err := s.store.Transaction(func(tx repository.Store) error {
		*result = MergeResult{}
		a := newApplier(tx)
		for i := range snap.TeamMembers {
			created, err := mergeMemberRecord(a, fmt.Sprintf("teamMembers[%d]", i), &snap.TeamMembers[i])
			if err != nil {
				return err
			}
			if created {
				result.MembersCreated++
			} else {
				result.MembersUpdated++
			}
		}
		for i := range snap.Projects {
			created, err := mergeProjectRecord(a, fmt.Sprintf("projects[%d]", i), &snap.Projects[i])
			if err != nil {
				return err
			}
			if created {
				result.ProjectsCreated++
			} else {
				result.ProjectsUpdated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, applyFailure("merge", err)
	}
	return result, nil
}

func mergeMemberRecord(a *applier, field string, rec *MemberRecord) (bool, error) {
	member, err := a.tx.Members().GetByName(rec.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_, err := a.createMember(field, rec)
		return true, err
	}
	if err != nil {
		return false, err
	}
	mergeMember(member, rec)
	if err := a.tx.Members().Update(member); err != nil {
		return false, err
	}
	a.remember(member.Name, member.ID)
	return false, nil
}

func mergeProjectRecord(a *applier, field string, rec *ProjectRecord) (bool, error) {
	project, err := a.tx.Projects().GetByName(rec.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_, err := a.createProject(field, rec)
		return true, err
	}
	if err != nil {
		return false, err
	}
	if err := mergeProject(field, project, rec); err != nil {
		return false, err
	}
	if err := a.tx.Projects().Update(project); err != nil {
		return false, err
	}
	return false, a.replaceProjectCollections(field, project.ID, rec)
}

// applyFailure keeps validation errors as they are and reports anything
// else as a storage failure of the operation
func applyFailure(op string, err error) error {
	if apperrors.IsValidation(err) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}
