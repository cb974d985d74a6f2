package service_test

import (
	"testing"
	"time"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/mocks"
	"resource-manager-backend/internal/repository"
	"resource-manager-backend/internal/service"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockStore    *mocks.MockStore
	mockMembers  *mocks.MockTeamMemberRepositoryInterface
	mockProjects *mocks.MockProjectRepositoryInterface
	service      *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockMembers = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockProjects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockStore.EXPECT().Members().Return(suite.mockMembers).AnyTimes()
	suite.mockStore.EXPECT().Projects().Return(suite.mockProjects).AnyTimes()
	suite.mockStore.EXPECT().Transaction(gomock.Any()).DoAndReturn(func(fn func(repository.Store) error) error {
		return fn(suite.mockStore)
	}).AnyTimes()
	suite.service = service.NewProjectService(suite.mockStore, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func project(id uint, name string) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Status:    models.DefaultProjectStatus,
	}
}

func (suite *ProjectServiceTestSuite) TestCreate() {
	suite.mockProjects.EXPECT().GetByName("Apollo").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMembers.EXPECT().GetByName("Alice").Return(member(4, "Alice"), nil)
	suite.mockProjects.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		suite.Equal(models.DefaultProjectStatus, p.Status)
		suite.Require().Len(p.Memberships, 1)
		suite.Equal(uint(4), p.Memberships[0].TeamMemberID)
		suite.Require().Len(p.Tasks, 1)
		suite.Equal(uint(4), *p.Tasks[0].AssigneeID)
		p.ID = 10
		return nil
	})
	stored := project(10, "Apollo")
	stored.Memberships = []models.ProjectMember{{TeamMemberID: 4, TeamMember: member(4, "Alice")}}
	suite.mockProjects.EXPECT().GetByID(uint(10)).Return(stored, nil)

	rec, err := suite.service.Create(&service.ProjectRecord{
		Name: "Apollo",
		Team: []string{"Alice", "Alice"},
		Tasks: []service.TaskRecord{
			{Text: lo.ToPtr("Build"), Assignee: lo.ToPtr("Alice")},
		},
	})

	suite.Require().NoError(err)
	suite.Equal(uint(10), rec.ID)
	suite.Equal([]string{"Alice"}, rec.Team)
	suite.Equal("planning", *rec.Status)
}

func (suite *ProjectServiceTestSuite) TestCreateDuplicateName() {
	suite.mockProjects.EXPECT().GetByName("Apollo").Return(project(1, "Apollo"), nil)

	_, err := suite.service.Create(&service.ProjectRecord{Name: "Apollo"})

	suite.ErrorIs(err, apperrors.ErrProjectExists)
}

func (suite *ProjectServiceTestSuite) TestCreateUnknownTeamMember() {
	suite.mockProjects.EXPECT().GetByName("Apollo").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMembers.EXPECT().GetByName("Ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(&service.ProjectRecord{Name: "Apollo", Team: []string{"Ghost"}})

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("team[0]", verr.Field)
}

func (suite *ProjectServiceTestSuite) TestCreateValidation() {
	_, err := suite.service.Create(&service.ProjectRecord{})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.Create(&service.ProjectRecord{Name: "P", Links: []service.LinkRecord{{Label: lo.ToPtr("no url")}}})
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("links[0].url", verr.Field)
}

func (suite *ProjectServiceTestSuite) TestUpdateReplacesTeamOnlyWhenPresent() {
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
	suite.mockProjects.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		suite.Equal("active", p.Status)
		suite.True(p.Starred)
		return nil
	})
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)

	_, err := suite.service.Update(1, &service.UpdateProjectRequest{
		Status:  lo.ToPtr("active"),
		Starred: lo.ToPtr(true),
	})

	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestUpdateClearsDeliveryDate() {
	stored := project(1, "Apollo")
	delivery := datatypes.Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	stored.DeliveryDate = &delivery

	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(stored, nil)
	suite.mockMembers.EXPECT().GetByName("Bob").Return(member(2, "Bob"), nil)
	suite.mockProjects.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		suite.Nil(p.DeliveryDate)
		return nil
	})
	suite.mockProjects.EXPECT().ReplaceMembers(uint(1), []uint{2}).Return(nil)
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(stored, nil)

	_, err := suite.service.Update(1, &service.UpdateProjectRequest{
		DeliveryDate: service.Null(),
		Team:         []string{"Bob"},
	})

	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestUpdateNotFound() {
	suite.mockProjects.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(5, &service.UpdateProjectRequest{Starred: lo.ToPtr(true)})

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestDelete() {
	suite.mockProjects.EXPECT().Delete(uint(1)).Return(nil)
	suite.NoError(suite.service.Delete(1))

	suite.mockProjects.EXPECT().Delete(uint(2)).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.Delete(2), apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestAddTeamMemberRecomputesWorkload() {
	testCases := []struct {
		name     string
		projects int64
		workload int
	}{
		{name: "One project", projects: 1, workload: 25},
		{name: "Three projects", projects: 3, workload: 75},
		{name: "Capped at 100", projects: 6, workload: 100},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
			suite.mockMembers.EXPECT().GetByName("Alice").Return(member(4, "Alice"), nil)
			suite.mockProjects.EXPECT().AddMember(uint(1), uint(4)).Return(nil)
			suite.mockMembers.EXPECT().CountProjects(uint(4)).Return(tc.projects, nil)
			suite.mockMembers.EXPECT().GetByID(uint(4)).Return(member(4, "Alice"), nil)
			suite.mockMembers.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.TeamMember) error {
				suite.Equal(tc.workload, m.Workload)
				return nil
			})

			suite.NoError(suite.service.AddTeamMember(1, &service.AddTeamMemberRequest{MemberName: "Alice"}))
		})
	}
}

func (suite *ProjectServiceTestSuite) TestAddTeamMemberTwiceIsNoop() {
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
	suite.mockMembers.EXPECT().GetByName("Alice").Return(member(4, "Alice"), nil)
	suite.mockProjects.EXPECT().AddMember(uint(1), uint(4)).Return(gorm.ErrDuplicatedKey)
	suite.mockMembers.EXPECT().CountProjects(uint(4)).Return(int64(1), nil)
	suite.mockMembers.EXPECT().GetByID(uint(4)).Return(member(4, "Alice"), nil)
	suite.mockMembers.EXPECT().Update(gomock.Any()).Return(nil)

	suite.NoError(suite.service.AddTeamMember(1, &service.AddTeamMemberRequest{MemberName: "Alice"}))
}

func (suite *ProjectServiceTestSuite) TestAddTeamMemberErrors() {
	suite.True(apperrors.IsValidation(suite.service.AddTeamMember(1, &service.AddTeamMemberRequest{})))

	suite.mockProjects.EXPECT().GetByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.AddTeamMember(9, &service.AddTeamMemberRequest{MemberName: "Alice"}), apperrors.ErrProjectNotFound)

	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
	suite.mockMembers.EXPECT().GetByName("Ghost").Return(nil, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.AddTeamMember(1, &service.AddTeamMemberRequest{MemberName: "Ghost"}), apperrors.ErrTeamMemberNotFound)
}

func (suite *ProjectServiceTestSuite) TestRemoveTeamMember() {
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
	suite.mockMembers.EXPECT().GetByName("Alice").Return(member(4, "Alice"), nil)
	suite.mockProjects.EXPECT().RemoveMember(uint(1), uint(4)).Return(nil)
	suite.mockMembers.EXPECT().CountProjects(uint(4)).Return(int64(0), nil)
	suite.mockMembers.EXPECT().GetByID(uint(4)).Return(member(4, "Alice"), nil)
	suite.mockMembers.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.TeamMember) error {
		suite.Equal(0, m.Workload)
		return nil
	})

	suite.NoError(suite.service.RemoveTeamMember(1, "Alice"))
}

func (suite *ProjectServiceTestSuite) TestAddImageDefaultsToLast() {
	stored := project(1, "Apollo")
	stored.Images = []models.ProjectImage{{ID: 1}, {ID: 2}}
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(stored, nil)
	suite.mockProjects.EXPECT().AddImage(gomock.Any()).DoAndReturn(func(img *models.ProjectImage) error {
		img.ID = 3
		return nil
	})

	rec, err := suite.service.AddImage(1, &service.AddImageRequest{ImageData: "data:image/png;base64,AA"})

	suite.Require().NoError(err)
	suite.Equal(service.ImageRecord{ID: 3, ImageData: "data:image/png;base64,AA", DisplayOrder: 2}, *rec)
}

func (suite *ProjectServiceTestSuite) TestAddImageExplicitOrder() {
	suite.mockProjects.EXPECT().GetByID(uint(1)).Return(project(1, "Apollo"), nil)
	suite.mockProjects.EXPECT().AddImage(gomock.Any()).Return(nil)

	rec, err := suite.service.AddImage(1, &service.AddImageRequest{ImageData: "x", DisplayOrder: lo.ToPtr(7)})

	suite.Require().NoError(err)
	suite.Equal(7, rec.DisplayOrder)
}

func (suite *ProjectServiceTestSuite) TestDeleteImageNotFound() {
	suite.mockProjects.EXPECT().DeleteImage(uint(1), uint(8)).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.DeleteImage(1, 8), apperrors.ErrProjectImageNotFound)
}

func (suite *ProjectServiceTestSuite) TestAddLink() {
	suite.mockProjects.EXPECT().AddLink(gomock.Any()).DoAndReturn(func(link *models.ProjectLink) error {
		suite.Equal(uint(1), link.ProjectID)
		link.ID = 5
		return nil
	})

	rec, err := suite.service.AddLink(1, &service.AddLinkRequest{URL: "https://example.com", Label: lo.ToPtr("Docs")})

	suite.Require().NoError(err)
	suite.Equal(uint(5), rec.ID)

	suite.mockProjects.EXPECT().AddLink(gomock.Any()).Return(gorm.ErrForeignKeyViolated)
	_, err = suite.service.AddLink(2, &service.AddLinkRequest{URL: "https://example.com"})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestDeleteLinkNotFound() {
	suite.mockProjects.EXPECT().DeleteLink(uint(1), uint(8)).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.DeleteLink(1, 8), apperrors.ErrProjectLinkNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
