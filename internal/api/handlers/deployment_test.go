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

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DeploymentHandlerTestSuite defines the test suite for DeploymentHandler
type DeploymentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDeploymentServiceInterface
	handler     *handlers.DeploymentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DeploymentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDeploymentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDeploymentHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand-in for the auth middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", testActorID)
		c.Next()
	})

	deployments := suite.httpSuite.Router.Group("/api/v1/deployments")
	{
		deployments.GET("", suite.handler.ListDeployments)
		deployments.POST("", suite.handler.CreateDeployment)
		deployments.GET("/:id", suite.handler.GetDeployment)
		deployments.PATCH("/:id/status", suite.handler.UpdateDeploymentStatus)
		deployments.POST("/:id/rollback", suite.handler.RollbackDeployment)
		deployments.DELETE("/:id", suite.handler.DeleteDeployment)
	}
}

// TearDownTest cleans up after each test
func (suite *DeploymentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDeployment tests the CreateDeployment handler
func (suite *DeploymentHandlerTestSuite) TestCreateDeployment() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"service_id":  4,
			"version":     "2.3.0",
			"commit_hash": "9f8c1ab",
			"environment": "production",
		}

		deployedBy := testActorID
		expected := &service.DeploymentResponse{
			ID:          20,
			ServiceID:   4,
			DeployedBy:  &deployedBy,
			Version:     "2.3.0",
			Type:        models.DeploymentTypeManual,
			Status:      models.DeploymentStatusPending,
			Environment: "production",
		}
		suite.mockService.EXPECT().
			Create(testActorID, gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deployments", requestBody)

		var response service.DeploymentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.DeploymentStatusPending, response.Status)
		assert.Equal(t, "2.3.0", response.Version)
	})

	suite.T().Run("ServiceNotFound", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"service_id":  999,
			"version":     "2.3.0",
			"environment": "production",
		}

		suite.mockService.EXPECT().
			Create(testActorID, gomock.Any()).
			Return(nil, apperrors.ErrServiceNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deployments", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateDeploymentStatus tests the UpdateDeploymentStatus handler
func (suite *DeploymentHandlerTestSuite) TestUpdateDeploymentStatus() {
	suite.T().Run("MarkFailed", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"status":        "failed",
			"error_message": "migration step exited with code 1",
		}

		expected := &service.DeploymentResponse{
			ID:           20,
			ServiceID:    4,
			Status:       models.DeploymentStatusFailed,
			ErrorMessage: "migration step exited with code 1",
		}
		suite.mockService.EXPECT().
			UpdateStatus(int64(20), gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deployments/20/status", requestBody)

		var response service.DeploymentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.DeploymentStatusFailed, response.Status)
		assert.NotEmpty(t, response.ErrorMessage)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		requestBody := map[string]interface{}{"status": "exploded"}

		suite.mockService.EXPECT().
			UpdateStatus(int64(20), gomock.Any()).
			Return(nil, apperrors.NewValidationError("status", "invalid deployment status"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deployments/20/status", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestRollbackDeployment tests the RollbackDeployment handler
func (suite *DeploymentHandlerTestSuite) TestRollbackDeployment() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"notes": "rolling back the broken release",
		}

		rollbackFrom := int64(20)
		expected := &service.DeploymentResponse{
			ID:             21,
			ServiceID:      4,
			Version:        "2.2.0",
			Type:           models.DeploymentTypeRollback,
			Status:         models.DeploymentStatusPending,
			Environment:    "production",
			RollbackFromID: &rollbackFrom,
		}
		suite.mockService.EXPECT().
			Rollback(int64(20), testActorID, gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deployments/20/rollback", requestBody)

		var response service.DeploymentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.DeploymentTypeRollback, response.Type)
		assert.Equal(t, rollbackFrom, *response.RollbackFromID)
	})

	suite.T().Run("TargetNotSuccessful", func(t *testing.T) {
		suite.mockService.EXPECT().
			Rollback(int64(22), testActorID, gomock.Any()).
			Return(nil, apperrors.NewConflictError("can only roll back to a successful deployment"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deployments/22/rollback", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "successful deployment")
	})

	suite.T().Run("TargetNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Rollback(int64(99), testActorID, gomock.Any()).
			Return(nil, apperrors.ErrDeploymentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deployments/99/rollback", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestListDeployments tests the ListDeployments handler
func (suite *DeploymentHandlerTestSuite) TestListDeployments() {
	suite.T().Run("Success", func(t *testing.T) {
		page := &query.Page[service.DeploymentResponse]{
			Items: []service.DeploymentResponse{{ID: 20, ServiceID: 4}},
			Meta:  query.Meta{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
		}
		suite.mockService.EXPECT().List(gomock.Any()).Return(page, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/deployments?service_id=4&status=success&environment=production", nil)

		var response query.Page[service.DeploymentResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Items, 1)
	})

	suite.T().Run("InvalidSince", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deployments?since=yesterday", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "RFC 3339")
	})
}

// TestDeleteDeployment tests the DeleteDeployment handler
func (suite *DeploymentHandlerTestSuite) TestDeleteDeployment() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(int64(20)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/deployments/20", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

// TestDeploymentHandlerTestSuite runs the test suite
func TestDeploymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentHandlerTestSuite))
}
