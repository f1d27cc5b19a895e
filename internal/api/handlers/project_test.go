package handlers_test

import (
	"net/http"
	"testing"

	"devflow-backend/internal/api/handlers"
	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/mocks"
	"devflow-backend/internal/query"
	"devflow-backend/internal/service"
	"devflow-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	projects := suite.httpSuite.Router.Group("/api/v1/projects")
	{
		projects.POST("", suite.handler.CreateProject)
		projects.GET("/key/:key", suite.handler.GetProjectByKey)
		projects.GET("/team/:team_id", suite.handler.ListTeamProjects)
		projects.GET("/:id", suite.handler.GetProject)
		projects.PATCH("/:id/status", suite.handler.UpdateProjectStatus)
		projects.DELETE("/:id", suite.handler.DeleteProject)
	}
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProject tests the CreateProject handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team_id": 1,
			"name":    "Web Frontend",
			"key":     "web",
		}

		expected := &service.ProjectResponse{
			ID:     3,
			TeamID: 1,
			Name:   "Web Frontend",
			Key:    "WEB",
			Status: models.ProjectStatusPlanning,
		}
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects", requestBody)

		var response service.ProjectResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "WEB", response.Key)
	})

	suite.T().Run("DuplicateKey", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team_id": 1,
			"name":    "Web Frontend",
			"key":     "web",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrProjectExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "already exists")
	})
}

// TestGetProjectByKey tests the GetProjectByKey handler
func (suite *ProjectHandlerTestSuite) TestGetProjectByKey() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.ProjectResponse{ID: 3, TeamID: 1, Name: "Web Frontend", Key: "WEB"}
		suite.mockService.EXPECT().
			GetByKey("WEB").
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/key/WEB", nil)

		var response service.ProjectResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(3), response.ID)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByKey("NOPE").
			Return(nil, apperrors.ErrProjectNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/key/NOPE", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestListTeamProjects tests the ListTeamProjects handler
func (suite *ProjectHandlerTestSuite) TestListTeamProjects() {
	suite.T().Run("Success", func(t *testing.T) {
		page := &query.Page[service.ProjectResponse]{
			Items: []service.ProjectResponse{{ID: 3, TeamID: 1, Key: "WEB"}},
			Meta:  query.Meta{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
		}
		suite.mockService.EXPECT().
			ListByTeam(int64(1), gomock.Any()).
			Return(page, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/team/1", nil)

		var response query.Page[service.ProjectResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Items, 1)
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByTeam(int64(99), gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/team/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateProjectStatus tests the UpdateProjectStatus handler
func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{"status": "completed"}

		expected := &service.ProjectResponse{ID: 3, TeamID: 1, Name: "Web Frontend", Key: "WEB", Status: models.ProjectStatusCompleted}
		suite.mockService.EXPECT().
			UpdateStatus(int64(3), models.ProjectStatusCompleted).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/projects/3/status", requestBody)

		var response service.ProjectResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.ProjectStatusCompleted, response.Status)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		requestBody := map[string]interface{}{"status": "abandoned"}

		suite.mockService.EXPECT().
			UpdateStatus(int64(3), models.ProjectStatus("abandoned")).
			Return(nil, apperrors.NewValidationError("status", "invalid project status"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/projects/3/status", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid project status")
	})

	suite.T().Run("MissingStatus", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/projects/3/status", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteProject tests the DeleteProject handler
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(int64(3)).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/projects/3", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(int64(99)).
			Return(apperrors.ErrProjectNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/projects/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
