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

// SprintHandlerTestSuite defines the test suite for SprintHandler
type SprintHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSprintServiceInterface
	handler     *handlers.SprintHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SprintHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSprintServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSprintHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/projects/:id/sprints/active", suite.handler.GetActiveSprint)
	sprints := v1.Group("/sprints")
	{
		sprints.GET("", suite.handler.ListSprints)
		sprints.POST("", suite.handler.CreateSprint)
		sprints.GET("/:id", suite.handler.GetSprint)
		sprints.PUT("/:id", suite.handler.UpdateSprint)
		sprints.PATCH("/:id/status", suite.handler.UpdateSprintStatus)
		sprints.POST("/:id/start", suite.handler.StartSprint)
		sprints.POST("/:id/complete", suite.handler.CompleteSprint)
		sprints.DELETE("/:id", suite.handler.DeleteSprint)
	}
}

// TearDownTest cleans up after each test
func (suite *SprintHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSprint tests the CreateSprint handler
func (suite *SprintHandlerTestSuite) TestCreateSprint() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"project_id": 1,
			"name":       "Sprint 5",
			"goal":       "Ship the billing flow",
		}

		expected := &service.SprintResponse{
			ID:        10,
			ProjectID: 1,
			Name:      "Sprint 5",
			Status:    models.SprintStatusPlanned,
		}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sprints", requestBody)

		var response service.SprintResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.SprintStatusPlanned, response.Status)
	})

	suite.T().Run("ProjectNotFound", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"project_id": 999,
			"name":       "Sprint 1",
		}

		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sprints", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestStartSprint tests the StartSprint handler
func (suite *SprintHandlerTestSuite) TestStartSprint() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.SprintResponse{ID: 10, ProjectID: 1, Status: models.SprintStatusActive}
		suite.mockService.EXPECT().Start(int64(10)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sprints/10/start", nil)

		var response service.SprintResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.SprintStatusActive, response.Status)
	})

	suite.T().Run("AnotherSprintActive", func(t *testing.T) {
		suite.mockService.EXPECT().Start(int64(11)).
			Return(nil, apperrors.NewConflictError("project already has an active sprint"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sprints/11/start", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "active sprint")
	})
}

// TestCompleteSprint tests the CompleteSprint handler
func (suite *SprintHandlerTestSuite) TestCompleteSprint() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.SprintResponse{ID: 10, ProjectID: 1, Status: models.SprintStatusCompleted}
		suite.mockService.EXPECT().Complete(int64(10)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sprints/10/complete", nil)

		var response service.SprintResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.SprintStatusCompleted, response.Status)
	})
}

// TestUpdateSprintStatus tests the UpdateSprintStatus handler
func (suite *SprintHandlerTestSuite) TestUpdateSprintStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{"status": "active"}

		expected := &service.SprintResponse{ID: 10, ProjectID: 1, Status: models.SprintStatusActive}
		suite.mockService.EXPECT().
			UpdateStatus(int64(10), models.SprintStatusActive).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/sprints/10/status", requestBody)

		var response service.SprintResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.SprintStatusActive, response.Status)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		requestBody := map[string]interface{}{"status": "paused"}

		suite.mockService.EXPECT().
			UpdateStatus(int64(10), models.SprintStatus("paused")).
			Return(nil, apperrors.NewValidationError("status", "invalid sprint status"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/sprints/10/status", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("MissingStatus", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/sprints/10/status",
			map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetActiveSprint tests the GetActiveSprint handler
func (suite *SprintHandlerTestSuite) TestGetActiveSprint() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.SprintResponse{ID: 10, ProjectID: 1, Status: models.SprintStatusActive}
		suite.mockService.EXPECT().GetActive(int64(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/1/sprints/active", nil)

		var response service.SprintResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(10), response.ID)
	})

	suite.T().Run("NoActiveSprint", func(t *testing.T) {
		suite.mockService.EXPECT().GetActive(int64(2)).Return(nil, apperrors.ErrActiveSprintNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/2/sprints/active", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestListSprints tests the ListSprints handler
func (suite *SprintHandlerTestSuite) TestListSprints() {
	suite.T().Run("Success", func(t *testing.T) {
		page := &query.Page[service.SprintResponse]{
			Items: []service.SprintResponse{{ID: 10, ProjectID: 1}},
			Meta:  query.Meta{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
		}
		suite.mockService.EXPECT().List(gomock.Any()).Return(page, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/sprints?project_id=1&status=planned", nil)

		var response query.Page[service.SprintResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Items, 1)
	})

	suite.T().Run("InvalidProjectID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/sprints?project_id=oops", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteSprint tests the DeleteSprint handler
func (suite *SprintHandlerTestSuite) TestDeleteSprint() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(int64(10)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/sprints/10", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(int64(99)).Return(apperrors.ErrSprintNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/sprints/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestSprintHandlerTestSuite runs the test suite
func TestSprintHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SprintHandlerTestSuite))
}
