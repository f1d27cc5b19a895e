package repository_test

import (
	"testing"
	"time"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/repository"
	"devflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DeploymentRepositoryTestSuite exercises deployment persistence against a
// real Postgres
type DeploymentRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo    *repository.DeploymentRepository
	service *models.Service
}

// SetupTest prepares a fresh server and service for every test
func (suite *DeploymentRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.repo = repository.NewDeploymentRepository(suite.DB)

	server := testutils.NewServerFactory().Create()
	suite.Require().NoError(suite.DB.Create(server).Error)

	suite.service = testutils.NewServiceFactory().Create(server.ID)
	suite.Require().NoError(suite.DB.Create(suite.service).Error)
}

// TestGetLatestSuccessful verifies the rollback target lookup
func (suite *DeploymentRepositoryTestSuite) TestGetLatestSuccessful() {
	factory := testutils.NewDeploymentFactory()

	older := factory.Successful(suite.service.ID, "1.0.0")
	suite.Require().NoError(suite.DB.Create(older).Error)

	newer := factory.Successful(suite.service.ID, "1.1.0")
	suite.Require().NoError(suite.DB.Create(newer).Error)

	failed := factory.Create(suite.service.ID)
	failed.Status = models.DeploymentStatusFailed
	failed.Version = "1.2.0"
	suite.Require().NoError(suite.DB.Create(failed).Error)

	latest, err := suite.repo.GetLatestSuccessful(suite.service.ID)
	suite.Require().NoError(err)
	suite.Equal("1.1.0", latest.Version)
}

// TestGetLatestSuccessfulNone verifies the not found case
func (suite *DeploymentRepositoryTestSuite) TestGetLatestSuccessfulNone() {
	pending := testutils.NewDeploymentFactory().Create(suite.service.ID)
	suite.Require().NoError(suite.DB.Create(pending).Error)

	_, err := suite.repo.GetLatestSuccessful(suite.service.ID)
	suite.Error(err)
}

// TestGetByServiceID verifies history ordering, newest first
func (suite *DeploymentRepositoryTestSuite) TestGetByServiceID() {
	factory := testutils.NewDeploymentFactory()
	for _, version := range []string{"1.0.0", "1.1.0", "1.2.0"} {
		suite.Require().NoError(suite.DB.Create(factory.Successful(suite.service.ID, version)).Error)
	}

	deployments, total, err := suite.repo.GetByServiceID(suite.service.ID, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(deployments, 3)
	suite.Equal("1.2.0", deployments[0].Version)
	suite.Equal("1.0.0", deployments[2].Version)
}

// TestCountByStatusSince verifies the dashboard aggregation
func (suite *DeploymentRepositoryTestSuite) TestCountByStatusSince() {
	factory := testutils.NewDeploymentFactory()

	suite.Require().NoError(suite.DB.Create(factory.Successful(suite.service.ID, "1.0.0")).Error)
	suite.Require().NoError(suite.DB.Create(factory.Successful(suite.service.ID, "1.1.0")).Error)

	failed := factory.Create(suite.service.ID)
	failed.Status = models.DeploymentStatusFailed
	suite.Require().NoError(suite.DB.Create(failed).Error)

	counts, err := suite.repo.CountByStatusSince(time.Now().Add(-24 * time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(2), counts[models.DeploymentStatusSuccess])
	suite.Equal(int64(1), counts[models.DeploymentStatusFailed])

	counts, err = suite.repo.CountByStatusSince(time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Empty(counts)
}

// TestServiceDeleteCascades verifies deployments go away with their service
func (suite *DeploymentRepositoryTestSuite) TestServiceDeleteCascades() {
	deployment := testutils.NewDeploymentFactory().Successful(suite.service.ID, "1.0.0")
	suite.Require().NoError(suite.DB.Create(deployment).Error)

	suite.Require().NoError(suite.DB.Delete(&models.Service{}, suite.service.ID).Error)

	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Zero(count)
}

// TestDeploymentRepositoryTestSuite runs the test suite
func TestDeploymentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &DeploymentRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
