package service_test

import (
	"testing"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/repository"
	"devflow-backend/internal/service"
	"devflow-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// DeploymentServiceTestSuite exercises the deployment lifecycle against a
// real Postgres
type DeploymentServiceTestSuite struct {
	*testutils.BaseTestSuite
	svc      *service.DeploymentService
	actor    *models.User
	deployed *models.Service
}

// SetupTest prepares a fresh server, service and actor for every test
func (suite *DeploymentServiceTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.svc = service.NewDeploymentService(
		repository.NewDeploymentRepository(suite.DB),
		repository.NewServiceRepository(suite.DB),
		validator.New(),
	)

	suite.actor = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(suite.actor).Error)

	server := testutils.NewServerFactory().Create()
	suite.Require().NoError(suite.DB.Create(server).Error)

	suite.deployed = testutils.NewServiceFactory().Create(server.ID)
	suite.Require().NoError(suite.DB.Create(suite.deployed).Error)
}

func (suite *DeploymentServiceTestSuite) createDeployment(version string) *service.DeploymentResponse {
	deployment, err := suite.svc.Create(suite.actor.ID, &service.CreateDeploymentRequest{
		ServiceID:   suite.deployed.ID,
		Version:     version,
		CommitHash:  "9f8c1ab",
		Branch:      "main",
		Environment: "production",
	})
	suite.Require().NoError(err)
	return deployment
}

// TestCreateDefaults verifies a new deployment starts pending with the
// manual type and a start timestamp
func (suite *DeploymentServiceTestSuite) TestCreateDefaults() {
	deployment := suite.createDeployment("2.0.0")

	suite.Equal(models.DeploymentStatusPending, deployment.Status)
	suite.Equal(models.DeploymentTypeManual, deployment.Type)
	suite.NotEmpty(deployment.StartedAt)
	suite.Empty(deployment.CompletedAt)
	suite.Require().NotNil(deployment.DeployedBy)
	suite.Equal(suite.actor.ID, *deployment.DeployedBy)
}

// TestCreateUnknownService verifies the service existence check
func (suite *DeploymentServiceTestSuite) TestCreateUnknownService() {
	_, err := suite.svc.Create(suite.actor.ID, &service.CreateDeploymentRequest{
		ServiceID:   99999,
		Version:     "2.0.0",
		Environment: "production",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestUpdateStatusTerminal verifies terminal statuses stamp completed_at
// and failed stores the error message
func (suite *DeploymentServiceTestSuite) TestUpdateStatusTerminal() {
	deployment := suite.createDeployment("2.0.0")

	inProgress, err := suite.svc.UpdateStatus(deployment.ID, &service.UpdateDeploymentStatusRequest{
		Status: models.DeploymentStatusInProgress,
	})
	suite.Require().NoError(err)
	suite.Empty(inProgress.CompletedAt)

	failed, err := suite.svc.UpdateStatus(deployment.ID, &service.UpdateDeploymentStatusRequest{
		Status:       models.DeploymentStatusFailed,
		ErrorMessage: "health check never went green",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(failed.CompletedAt)
	suite.Equal("health check never went green", failed.ErrorMessage)
}

// TestRollbackCreatesNewDeployment verifies a rollback copies the target
// and leaves it untouched
func (suite *DeploymentServiceTestSuite) TestRollbackCreatesNewDeployment() {
	target := suite.createDeployment("2.0.0")
	_, err := suite.svc.UpdateStatus(target.ID, &service.UpdateDeploymentStatusRequest{
		Status: models.DeploymentStatusSuccess,
	})
	suite.Require().NoError(err)

	rollback, err := suite.svc.Rollback(target.ID, suite.actor.ID, &service.RollbackRequest{})
	suite.Require().NoError(err)

	suite.NotEqual(target.ID, rollback.ID)
	suite.Equal(models.DeploymentTypeRollback, rollback.Type)
	suite.Equal(models.DeploymentStatusPending, rollback.Status)
	suite.Equal(target.Version, rollback.Version)
	suite.Equal(target.CommitHash, rollback.CommitHash)
	suite.Equal(target.Environment, rollback.Environment)
	suite.Require().NotNil(rollback.RollbackFromID)
	suite.Equal(target.ID, *rollback.RollbackFromID)
	suite.NotEmpty(rollback.Notes, "a default note is filled in")

	// The target keeps its own status and identity
	reloaded, err := suite.svc.GetByID(target.ID)
	suite.Require().NoError(err)
	suite.Equal(models.DeploymentStatusSuccess, reloaded.Status)
	suite.Nil(reloaded.RollbackFromID)
}

// TestRollbackRequiresSuccess verifies only successful deployments can be
// rolled back to
func (suite *DeploymentServiceTestSuite) TestRollbackRequiresSuccess() {
	target := suite.createDeployment("2.0.0")

	_, err := suite.svc.Rollback(target.ID, suite.actor.ID, &service.RollbackRequest{})
	suite.Require().Error(err)
	suite.True(apperrors.IsConflict(err))

	_, err = suite.svc.UpdateStatus(target.ID, &service.UpdateDeploymentStatusRequest{
		Status:       models.DeploymentStatusFailed,
		ErrorMessage: "boom",
	})
	suite.Require().NoError(err)

	_, err = suite.svc.Rollback(target.ID, suite.actor.ID, &service.RollbackRequest{})
	suite.Require().Error(err)
	suite.True(apperrors.IsConflict(err))
}

// TestRollbackUnknownTarget verifies the not found case
func (suite *DeploymentServiceTestSuite) TestRollbackUnknownTarget() {
	_, err := suite.svc.Rollback(99999, suite.actor.ID, &service.RollbackRequest{})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestListFilters verifies filtering by service and status
func (suite *DeploymentServiceTestSuite) TestListFilters() {
	first := suite.createDeployment("1.0.0")
	suite.createDeployment("1.1.0")

	_, err := suite.svc.UpdateStatus(first.ID, &service.UpdateDeploymentStatusRequest{
		Status: models.DeploymentStatusSuccess,
	})
	suite.Require().NoError(err)

	status := models.DeploymentStatusSuccess
	page, err := suite.svc.List(&service.ListDeploymentsFilter{
		ServiceID: &suite.deployed.ID,
		Status:    &status,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Meta.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("1.0.0", page.Items[0].Version)
}

// TestDeploymentServiceTestSuite runs the test suite
func TestDeploymentServiceTestSuite(t *testing.T) {
	suite.Run(t, &DeploymentServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
