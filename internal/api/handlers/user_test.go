package handlers_test

import (
	"net/http"
	"testing"

	"devflow-backend/internal/api/handlers"
	"devflow-backend/internal/mocks"
	"devflow-backend/internal/query"
	"devflow-backend/internal/service"
	"devflow-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	users := suite.httpSuite.Router.Group("/api/v1/users")
	{
		users.GET("", suite.handler.ListUsers)
		users.GET("/:id", suite.handler.GetUser)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests the ListUsers handler
func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.T().Run("FiltersByAdminFlag", func(t *testing.T) {
		page := &query.Page[service.UserResponse]{
			Items: []service.UserResponse{{ID: 1, Username: "root", IsAdmin: true}},
			Meta:  query.Meta{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
		}
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(filter *service.ListUsersFilter) (*query.Page[service.UserResponse], error) {
				assert.NotNil(t, filter.IsAdmin)
				assert.True(t, *filter.IsAdmin)
				return page, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?is_admin=true", nil)

		var response query.Page[service.UserResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Items, 1)
	})

	suite.T().Run("NoFlagsMeansNoFilter", func(t *testing.T) {
		page := &query.Page[service.UserResponse]{
			Items: []service.UserResponse{},
			Meta:  query.Meta{Page: 1, PageSize: 20},
		}
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(filter *service.ListUsersFilter) (*query.Page[service.UserResponse], error) {
				assert.Nil(t, filter.IsActive)
				assert.Nil(t, filter.IsAdmin)
				return page, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("BadBoolValue", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?is_admin=maybe", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
