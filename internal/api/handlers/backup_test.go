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

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BackupHandlerTestSuite defines the test suite for BackupHandler
type BackupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBackupServiceInterface
	handler     *handlers.BackupHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *BackupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBackupServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBackupHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	api.GET("/backup", suite.handler.Export)
	api.POST("/backup", suite.handler.Replace)
	api.PUT("/backup", suite.handler.Merge)
	api.GET("/data", suite.handler.GetData)
	api.POST("/import", suite.handler.Import)
}

// TearDownTest cleans up after each test
func (suite *BackupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BackupHandlerTestSuite) TestExport() {
	snap := &service.Snapshot{
		TeamMembers: []service.MemberRecord{{ID: 1, Name: "Alice", Skills: []string{}, Projects: []string{"Apollo"}}},
		Projects:    []service.ProjectRecord{{ID: 2, Name: "Apollo", Team: []string{"Alice"}}},
		ExportDate:  "2024-05-01T12:00:00Z",
		Version:     service.SnapshotVersion,
	}
	suite.mockService.EXPECT().Export().Return(snap, nil).Times(2)

	for _, url := range []string{"/api/backup", "/api/data"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

		var got service.Snapshot
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
		suite.Equal("Alice", got.TeamMembers[0].Name)
		suite.Equal([]string{"Alice"}, got.Projects[0].Team)
		suite.Equal(service.SnapshotVersion, got.Version)
	}
}

func (suite *BackupHandlerTestSuite) TestExportStorageFailure() {
	suite.mockService.EXPECT().Export().Return(nil, apperrors.NewStorageError("export", errors.New("disk gone")))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/backup", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "disk gone")
}

func (suite *BackupHandlerTestSuite) TestReplace() {
	suite.mockService.EXPECT().ApplyReplace(gomock.Any()).DoAndReturn(func(snap *service.Snapshot) (*service.ReplaceResult, error) {
		suite.Len(snap.TeamMembers, 1)
		suite.Empty(snap.Projects)
		return &service.ReplaceResult{TeamMembers: 1}, nil
	})

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/backup", `{"teamMembers":[{"name":"Alice","role":"Dev"}],"projects":[]}`)

	var got handlers.ReplaceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal("Backup saved successfully to database", got.Message)
	suite.Equal(1, got.TeamMembers)
	suite.Zero(got.Projects)
	suite.NotEmpty(got.Timestamp)
}

func (suite *BackupHandlerTestSuite) TestReplaceRejectsBadBodies() {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "no data provided"},
		{"null", "null", "no data provided"},
		{"array", `[{"name":"Alice"}]`, "expected a JSON object"},
		{"malformed", `{"teamMembers":`, "expected a JSON object"},
		{"wrong type", `{"teamMembers":"Alice","projects":[]}`, "teamMembers"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/backup", tc.body)
			testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, tc.want)
		})
	}
}

func (suite *BackupHandlerTestSuite) TestReplaceIncompleteSnapshot() {
	suite.mockService.EXPECT().ApplyReplace(gomock.Any()).Return(nil, apperrors.ErrIncompleteSnapshot)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/backup", `{"teamMembers":[]}`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "expected teamMembers and projects")
}

func (suite *BackupHandlerTestSuite) TestReplaceInvalidRecord() {
	suite.mockService.EXPECT().ApplyReplace(gomock.Any()).
		Return(nil, apperrors.NewValidationError("projects[0].tasks[0].text", "is required"))

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/backup", `{"teamMembers":[],"projects":[{"name":"Apollo","tasks":[{}]}]}`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "projects[0].tasks[0].text")
}

func (suite *BackupHandlerTestSuite) TestMerge() {
	suite.mockService.EXPECT().ApplyMerge(gomock.Any()).DoAndReturn(func(snap *service.Snapshot) (*service.MergeResult, error) {
		suite.Nil(snap.TeamMembers)
		suite.Len(snap.Projects, 1)
		return &service.MergeResult{ProjectsCreated: 1, MembersUpdated: 2}, nil
	})

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/backup", `{"projects":[{"name":"Apollo"}]}`)

	var got handlers.MergeResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Backup merged successfully with database", got.Message)
	suite.Equal(1, got.Created)
	suite.Equal(2, got.Updated)
	suite.Equal(1, got.ProjectsCreated)
	suite.Equal(2, got.MembersUpdated)
}

func (suite *BackupHandlerTestSuite) TestMergeKeepsEmptyApartFromAbsent() {
	suite.mockService.EXPECT().ApplyMerge(gomock.Any()).DoAndReturn(func(snap *service.Snapshot) (*service.MergeResult, error) {
		suite.NotNil(snap.TeamMembers)
		suite.Empty(snap.TeamMembers)
		suite.Nil(snap.Projects)
		return &service.MergeResult{}, nil
	})

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/backup", `{"teamMembers":[]}`)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *BackupHandlerTestSuite) TestMergeConflict() {
	suite.mockService.EXPECT().ApplyMerge(gomock.Any()).Return(nil, apperrors.ErrProjectExists)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/backup", `{"projects":[{"name":"Apollo"}]}`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "project already exists")
}

func (suite *BackupHandlerTestSuite) TestImport() {
	suite.mockService.EXPECT().ApplyReplace(gomock.Any()).Return(&service.ReplaceResult{}, nil)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/import", `{"teamMembers":[],"projects":[]}`)

	var got handlers.ImportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Data imported successfully", got.Message)
}

// TestBackupHandlerTestSuite runs the test suite
func TestBackupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BackupHandlerTestSuite))
}
