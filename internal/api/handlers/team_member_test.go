package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"resource-manager-backend/internal/api/handlers"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/mocks"
	"resource-manager-backend/internal/service"
	"resource-manager-backend/internal/testutils"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamMemberHandlerTestSuite defines the test suite for TeamMemberHandler
type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamMemberServiceInterface
	handler     *handlers.TeamMemberHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamMemberServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamMemberHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	members := suite.httpSuite.Router.Group("/api/team-members")
	{
		members.GET("", suite.handler.ListTeamMembers)
		members.POST("", suite.handler.CreateTeamMember)
		members.GET("/:id", suite.handler.GetTeamMember)
		members.PUT("/:id", suite.handler.UpdateTeamMember)
		members.DELETE("/:id", suite.handler.DeleteTeamMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func memberRecord(id uint, name string) *service.MemberRecord {
	return &service.MemberRecord{
		ID:       id,
		Name:     name,
		Role:     lo.ToPtr("Developer"),
		Skills:   []string{"go"},
		Workload: lo.ToPtr(25),
		Projects: []string{"Apollo"},
	}
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers() {
	suite.mockService.EXPECT().GetAll().Return([]service.MemberRecord{*memberRecord(1, "Alice"), *memberRecord(2, "Bob")}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/team-members", nil)

	var got []service.MemberRecord
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got, 2)
	suite.Equal([]string{"Apollo"}, got[0].Projects)
}

func (suite *TeamMemberHandlerTestSuite) TestGetTeamMember() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().GetByID(uint(1)).Return(memberRecord(1, "Alice"), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/team-members/1", nil)

		var got service.MemberRecord
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
		suite.Equal("Alice", got.Name)
	})

	suite.Run("NotFound", func() {
		suite.mockService.EXPECT().GetByID(uint(9)).Return(nil, apperrors.ErrTeamMemberNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/team-members/9", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
	})

	suite.Run("InvalidID", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/team-members/abc", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
	})
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateTeamMemberRequest) (*service.MemberRecord, error) {
			suite.Equal("Alice", req.Name)
			suite.Equal("Developer", req.Role)
			return memberRecord(1, "Alice"), nil
		})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team-members", map[string]interface{}{
			"name": "Alice",
			"role": "Developer",
		})

		testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)
	})

	suite.Run("Duplicate", func() {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTeamMemberExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team-members", map[string]interface{}{
			"name": "Alice",
			"role": "Developer",
		})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists with this name")
	})

	suite.Run("MissingRole", func() {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewValidationError("role", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team-members", map[string]interface{}{"name": "Alice"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "role")
	})

	suite.Run("WrongType", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team-members", map[string]interface{}{"name": 42})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
	})
}

func (suite *TeamMemberHandlerTestSuite) TestUpdateTeamMember() {
	suite.mockService.EXPECT().Update(uint(1), gomock.Any()).DoAndReturn(func(_ uint, req *service.UpdateTeamMemberRequest) (*service.MemberRecord, error) {
		suite.Equal("Alicia", *req.Name)
		suite.Nil(req.Role)
		return memberRecord(1, "Alicia"), nil
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/team-members/1", map[string]interface{}{"name": "Alicia"})

	var got service.MemberRecord
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Alicia", got.Name)
}

func (suite *TeamMemberHandlerTestSuite) TestDeleteTeamMember() {
	suite.mockService.EXPECT().Delete(uint(1)).Return(nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/team-members/1", nil)
	var got handlers.MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Team member deleted successfully", got.Message)

	suite.mockService.EXPECT().Delete(uint(2)).Return(errors.New("connection reset"))
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/team-members/2", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "connection reset")
}

// TestTeamMemberHandlerTestSuite runs the test suite
func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
