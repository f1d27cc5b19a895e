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

// IssueServiceTestSuite exercises issue lifecycle rules against a real Postgres
type IssueServiceTestSuite struct {
	*testutils.BaseTestSuite
	svc     *service.IssueService
	creator *models.User
	project *models.Project
}

// SetupTest prepares a fresh project and creator for every test
func (suite *IssueServiceTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.svc = service.NewIssueService(
		repository.NewIssueRepository(suite.DB),
		repository.NewProjectRepository(suite.DB),
		repository.NewSprintRepository(suite.DB),
		repository.NewUserRepository(suite.DB),
		validator.New(),
	)

	suite.creator = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(suite.creator).Error)

	team := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(team).Error)

	suite.project = testutils.NewProjectFactory().WithKey(team.ID, "WEB")
	suite.Require().NoError(suite.DB.Create(suite.project).Error)
}

func (suite *IssueServiceTestSuite) createIssue(title string) *service.IssueResponse {
	issue, err := suite.svc.Create(suite.creator.ID, &service.CreateIssueRequest{
		ProjectID: suite.project.ID,
		Title:     title,
	})
	suite.Require().NoError(err)
	return issue
}

// TestCreateAssignsKeysAndDefaults verifies key sequencing and field defaults
func (suite *IssueServiceTestSuite) TestCreateAssignsKeysAndDefaults() {
	first := suite.createIssue("first")
	suite.Equal("WEB-1", first.Key)
	suite.Equal(models.IssueTypeTask, first.Type)
	suite.Equal(models.IssuePriorityMedium, first.Priority)
	suite.Equal(models.IssueStatusTodo, first.Status)
	suite.Equal(suite.creator.ID, first.CreatorID)

	second := suite.createIssue("second")
	suite.Equal("WEB-2", second.Key)
}

// TestGetByKeyIsCaseInsensitive verifies lowercase keys resolve
func (suite *IssueServiceTestSuite) TestGetByKeyIsCaseInsensitive() {
	issue := suite.createIssue("find me")

	found, err := suite.svc.GetByKey("web-1")
	suite.Require().NoError(err)
	suite.Equal(issue.ID, found.ID)
}

// TestMoveToSprintRejectsForeignSprint verifies sprints must belong to the
// issue's project
func (suite *IssueServiceTestSuite) TestMoveToSprintRejectsForeignSprint() {
	issue := suite.createIssue("wanderer")

	sprint := testutils.NewSprintFactory().Create(suite.project.ID)
	suite.Require().NoError(suite.DB.Create(sprint).Error)

	otherTeam := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(otherTeam).Error)
	otherProject := testutils.NewProjectFactory().Create(otherTeam.ID)
	suite.Require().NoError(suite.DB.Create(otherProject).Error)
	foreignSprint := testutils.NewSprintFactory().Create(otherProject.ID)
	suite.Require().NoError(suite.DB.Create(foreignSprint).Error)

	req := &service.MoveIssueToSprintRequest{}
	req.SprintID.Set = true
	req.SprintID.Valid = true
	req.SprintID.Value = foreignSprint.ID

	_, err := suite.svc.MoveToSprint(issue.ID, req)
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))

	req.SprintID.Value = sprint.ID
	moved, err := suite.svc.MoveToSprint(issue.ID, req)
	suite.Require().NoError(err)
	suite.Require().NotNil(moved.SprintID)
	suite.Equal(sprint.ID, *moved.SprintID)

	// Explicit null sends the issue back to the backlog
	back := &service.MoveIssueToSprintRequest{}
	back.SprintID.Set = true
	moved, err = suite.svc.MoveToSprint(issue.ID, back)
	suite.Require().NoError(err)
	suite.Nil(moved.SprintID)
}

// TestAssignUnknownUser verifies the assignee existence check
func (suite *IssueServiceTestSuite) TestAssignUnknownUser() {
	issue := suite.createIssue("unloved")

	req := &service.AssignIssueRequest{}
	req.AssigneeID.Set = true
	req.AssigneeID.Valid = true
	req.AssigneeID.Value = 99999

	_, err := suite.svc.Assign(issue.ID, req)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestListBacklog verifies the backlog filter only returns unsprinted issues
func (suite *IssueServiceTestSuite) TestListBacklog() {
	sprint := testutils.NewSprintFactory().Create(suite.project.ID)
	suite.Require().NoError(suite.DB.Create(sprint).Error)

	sprinted := suite.createIssue("sprinted")
	req := &service.MoveIssueToSprintRequest{}
	req.SprintID.Set = true
	req.SprintID.Valid = true
	req.SprintID.Value = sprint.ID
	_, err := suite.svc.MoveToSprint(sprinted.ID, req)
	suite.Require().NoError(err)

	backlogged := suite.createIssue("backlogged")

	page, err := suite.svc.List(&service.ListIssuesFilter{
		ProjectID: &suite.project.ID,
		Backlog:   true,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Meta.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal(backlogged.ID, page.Items[0].ID)
}

// TestIssueServiceTestSuite runs the test suite
func TestIssueServiceTestSuite(t *testing.T) {
	suite.Run(t, &IssueServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
