package handlers_test

import (
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

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	handler     *handlers.TaskHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTaskHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.POST("/projects/:id/tasks", suite.handler.CreateTask)
		api.PUT("/tasks/:id", suite.handler.UpdateTask)
		api.DELETE("/tasks/:id", suite.handler.DeleteTask)
		api.POST("/tasks/:id/subtasks", suite.handler.CreateSubtask)
		api.PUT("/subtasks/:id", suite.handler.UpdateSubtask)
		api.DELETE("/subtasks/:id", suite.handler.DeleteSubtask)
	}
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	suite.mockService.EXPECT().CreateTask(uint(1), gomock.Any()).DoAndReturn(func(_ uint, req *service.TaskRecord) (*service.TaskRecord, error) {
		suite.Equal("Write docs", *req.Text)
		suite.Equal("Alice", *req.Assignee)
		suite.Equal("2024-02-01", *req.StartDate)
		return &service.TaskRecord{ID: 11, Text: req.Text, Assignee: req.Assignee, StartDate: req.StartDate, Subtasks: []service.SubtaskRecord{}}, nil
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/projects/1/tasks", map[string]interface{}{
		"text":      "Write docs",
		"assignee":  "Alice",
		"startDate": "2024-02-01",
	})

	var got service.TaskRecord
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(uint(11), got.ID)
	suite.Equal("Alice", *got.Assignee)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskErrors() {
	suite.mockService.EXPECT().CreateTask(uint(1), gomock.Any()).Return(nil, apperrors.NewValidationError("text", "is required"))
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/projects/1/tasks", map[string]interface{}{})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "text - is required")

	suite.mockService.EXPECT().CreateTask(uint(8), gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/projects/8/tasks", map[string]interface{}{"text": "t"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskDistinguishesNullFromAbsent() {
	suite.mockService.EXPECT().UpdateTask(uint(5), gomock.Any()).DoAndReturn(func(_ uint, req *service.UpdateTaskRequest) (*service.TaskRecord, error) {
		suite.True(req.Assignee.Set)
		suite.Nil(req.Assignee.Value)
		suite.False(req.StartDate.Set)
		suite.True(*req.Completed)
		return &service.TaskRecord{ID: 5, Text: lo.ToPtr("Old"), Completed: true}, nil
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/tasks/5", map[string]interface{}{
		"completed": true,
		"assignee":  nil,
	})

	var got service.TaskRecord
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.True(got.Completed)
	suite.Nil(got.Assignee)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	suite.mockService.EXPECT().DeleteTask(uint(5)).Return(apperrors.ErrTaskNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/tasks/5", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

func (suite *TaskHandlerTestSuite) TestSubtasks() {
	suite.mockService.EXPECT().CreateSubtask(uint(5), gomock.Any()).Return(&service.SubtaskRecord{ID: 9, Text: lo.ToPtr("Check")}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tasks/5/subtasks", map[string]string{"text": "Check"})
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)

	suite.mockService.EXPECT().UpdateSubtask(uint(9), gomock.Any()).DoAndReturn(func(_ uint, req *service.UpdateSubtaskRequest) (*service.SubtaskRecord, error) {
		suite.Equal("Bob", *req.Assignee.Value)
		return &service.SubtaskRecord{ID: 9, Text: lo.ToPtr("Check"), Assignee: lo.ToPtr("Bob")}, nil
	})
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/subtasks/9", map[string]string{"assignee": "Bob"})
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)

	suite.mockService.EXPECT().DeleteSubtask(uint(9)).Return(nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/subtasks/9", nil)
	var msg handlers.MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &msg)
	suite.Equal("Subtask deleted successfully", msg.Message)
}

func (suite *TaskHandlerTestSuite) TestMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/subtasks/9", map[string]interface{}{"completed": "yes"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
