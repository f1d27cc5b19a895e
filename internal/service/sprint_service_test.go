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

// SprintServiceTestSuite exercises the sprint lifecycle rules against a
// real Postgres
type SprintServiceTestSuite struct {
	*testutils.BaseTestSuite
	svc     *service.SprintService
	project *models.Project
}

// SetupTest prepares a fresh project for every test
func (suite *SprintServiceTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.svc = service.NewSprintService(
		repository.NewSprintRepository(suite.DB),
		repository.NewProjectRepository(suite.DB),
		validator.New(),
	)

	team := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(team).Error)

	suite.project = testutils.NewProjectFactory().Create(team.ID)
	suite.Require().NoError(suite.DB.Create(suite.project).Error)
}

func (suite *SprintServiceTestSuite) createSprint(name string) *service.SprintResponse {
	sprint, err := suite.svc.Create(&service.CreateSprintRequest{
		ProjectID: suite.project.ID,
		Name:      name,
	})
	suite.Require().NoError(err)
	return sprint
}

// TestStartEnforcesSingleActive verifies only one sprint can be active per project
func (suite *SprintServiceTestSuite) TestStartEnforcesSingleActive() {
	first := suite.createSprint("Sprint 1")
	second := suite.createSprint("Sprint 2")

	started, err := suite.svc.Start(first.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SprintStatusActive, started.Status)

	_, err = suite.svc.Start(second.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsConflict(err))

	// Starting the already active sprint does not conflict with itself
	_, err = suite.svc.Start(first.ID)
	suite.NoError(err)
}

// TestStartAfterComplete verifies completing the active sprint frees the slot
func (suite *SprintServiceTestSuite) TestStartAfterComplete() {
	first := suite.createSprint("Sprint 1")
	second := suite.createSprint("Sprint 2")

	_, err := suite.svc.Start(first.ID)
	suite.Require().NoError(err)

	completed, err := suite.svc.Complete(first.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SprintStatusCompleted, completed.Status)

	started, err := suite.svc.Start(second.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SprintStatusActive, started.Status)
}

// TestUpdateStatusActivationGuard verifies the guard also applies to the
// status endpoint, not just Start
func (suite *SprintServiceTestSuite) TestUpdateStatusActivationGuard() {
	first := suite.createSprint("Sprint 1")
	second := suite.createSprint("Sprint 2")

	_, err := suite.svc.UpdateStatus(first.ID, models.SprintStatusActive)
	suite.Require().NoError(err)

	_, err = suite.svc.UpdateStatus(second.ID, models.SprintStatusActive)
	suite.Require().Error(err)
	suite.True(apperrors.IsConflict(err))

	_, err = suite.svc.UpdateStatus(second.ID, models.SprintStatus("archived"))
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestCompleteIsUnguarded verifies completing a sprint never conflicts
func (suite *SprintServiceTestSuite) TestCompleteIsUnguarded() {
	sprint := suite.createSprint("Sprint 1")

	completed, err := suite.svc.Complete(sprint.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SprintStatusCompleted, completed.Status)

	// Completing again is a no-op, not an error
	completed, err = suite.svc.Complete(sprint.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SprintStatusCompleted, completed.Status)
}

// TestGetActive verifies the active sprint lookup
func (suite *SprintServiceTestSuite) TestGetActive() {
	_, err := suite.svc.GetActive(suite.project.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))

	sprint := suite.createSprint("Sprint 1")
	_, err = suite.svc.Start(sprint.ID)
	suite.Require().NoError(err)

	active, err := suite.svc.GetActive(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(sprint.ID, active.ID)
}

// TestGetByIDCountsIssues verifies the detail lookup reports the issue count
func (suite *SprintServiceTestSuite) TestGetByIDCountsIssues() {
	sprint := suite.createSprint("Sprint 1")

	creator := testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(creator).Error)

	issue := testutils.NewIssueFactory().Create(suite.project.ID, creator.ID, "P1-1")
	issue.SprintID = &sprint.ID
	suite.Require().NoError(suite.DB.Create(issue).Error)

	detail, err := suite.svc.GetByID(sprint.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(detail.IssueCount)
	suite.Equal(1, *detail.IssueCount)
}

// TestCreateRejectsInvertedDates verifies the date range check
func (suite *SprintServiceTestSuite) TestCreateRejectsInvertedDates() {
	start := testutils.NewSprintFactory().Create(suite.project.ID).StartDate
	end := start.AddDate(0, 0, -7)

	_, err := suite.svc.Create(&service.CreateSprintRequest{
		ProjectID: suite.project.ID,
		Name:      "Backwards",
		StartDate: start,
		EndDate:   &end,
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestSprintServiceTestSuite runs the test suite
func TestSprintServiceTestSuite(t *testing.T) {
	suite.Run(t, &SprintServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
