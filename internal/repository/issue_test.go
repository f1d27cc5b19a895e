package repository_test

import (
	"testing"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/repository"
	"devflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// IssueRepositoryTestSuite exercises issue persistence against a real Postgres
type IssueRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo        *repository.IssueRepository
	projectRepo *repository.ProjectRepository
	project     *models.Project
	creator     *models.User
}

// SetupTest prepares a fresh project and creator for every test
func (suite *IssueRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.repo = repository.NewIssueRepository(suite.DB)
	suite.projectRepo = repository.NewProjectRepository(suite.DB)

	suite.creator = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(suite.creator).Error)

	team := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(team).Error)

	suite.project = testutils.NewProjectFactory().WithKey(team.ID, "ABC")
	suite.Require().NoError(suite.DB.Create(suite.project).Error)
}

func (suite *IssueRepositoryTestSuite) newIssue(title string) *models.Issue {
	return &models.Issue{
		ProjectID: suite.project.ID,
		CreatorID: suite.creator.ID,
		Title:     title,
		Type:      models.IssueTypeTask,
		Priority:  models.IssuePriorityMedium,
		Status:    models.IssueStatusTodo,
	}
}

// TestCreateWithKeySequence verifies keys are assigned in order per project
func (suite *IssueRepositoryTestSuite) TestCreateWithKeySequence() {
	for i, expected := range []string{"ABC-1", "ABC-2", "ABC-3"} {
		issue := suite.newIssue("issue")
		suite.Require().NoError(suite.repo.CreateWithKey(issue))
		suite.Equal(expected, issue.Key, "issue %d", i+1)
	}
}

// TestCreateWithKeyPerProjectSequences verifies projects count independently
func (suite *IssueRepositoryTestSuite) TestCreateWithKeyPerProjectSequences() {
	otherTeam := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(otherTeam).Error)
	other := testutils.NewProjectFactory().WithKey(otherTeam.ID, "XYZ")
	suite.Require().NoError(suite.DB.Create(other).Error)

	first := suite.newIssue("first")
	suite.Require().NoError(suite.repo.CreateWithKey(first))
	suite.Equal("ABC-1", first.Key)

	foreign := &models.Issue{
		ProjectID: other.ID,
		CreatorID: suite.creator.ID,
		Title:     "other project",
		Type:      models.IssueTypeTask,
		Priority:  models.IssuePriorityMedium,
		Status:    models.IssueStatusTodo,
	}
	suite.Require().NoError(suite.repo.CreateWithKey(foreign))
	suite.Equal("XYZ-1", foreign.Key)

	second := suite.newIssue("second")
	suite.Require().NoError(suite.repo.CreateWithKey(second))
	suite.Equal("ABC-2", second.Key)
}

// TestCreateWithKeyMalformedFallback verifies the count fallback when the
// latest key does not parse
func (suite *IssueRepositoryTestSuite) TestCreateWithKeyMalformedFallback() {
	imported := testutils.NewIssueFactory().Create(suite.project.ID, suite.creator.ID, "LEGACY")
	suite.Require().NoError(suite.DB.Create(imported).Error)

	issue := suite.newIssue("after import")
	suite.Require().NoError(suite.repo.CreateWithKey(issue))
	suite.Equal("ABC-2", issue.Key)
}

// TestGetByKey verifies the key lookup
func (suite *IssueRepositoryTestSuite) TestGetByKey() {
	issue := suite.newIssue("find me")
	suite.Require().NoError(suite.repo.CreateWithKey(issue))

	found, err := suite.repo.GetByKey("ABC-1")
	suite.Require().NoError(err)
	suite.Equal(issue.ID, found.ID)

	_, err = suite.repo.GetByKey("ABC-999")
	suite.Error(err)
}

// TestGetBacklog verifies only issues without a sprint are returned
func (suite *IssueRepositoryTestSuite) TestGetBacklog() {
	sprint := testutils.NewSprintFactory().Create(suite.project.ID)
	suite.Require().NoError(suite.DB.Create(sprint).Error)

	inSprint := suite.newIssue("sprinted")
	suite.Require().NoError(suite.repo.CreateWithKey(inSprint))
	suite.Require().NoError(suite.DB.Model(inSprint).Update("sprint_id", sprint.ID).Error)

	backlogged := suite.newIssue("backlogged")
	suite.Require().NoError(suite.repo.CreateWithKey(backlogged))

	issues, total, err := suite.repo.GetBacklog(suite.project.ID, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(issues, 1)
	suite.Equal(backlogged.ID, issues[0].ID)
}

// TestSprintDeleteDetachesIssues verifies deleting a sprint sends its
// issues back to the backlog instead of deleting them
func (suite *IssueRepositoryTestSuite) TestSprintDeleteDetachesIssues() {
	sprint := testutils.NewSprintFactory().Create(suite.project.ID)
	suite.Require().NoError(suite.DB.Create(sprint).Error)

	issue := suite.newIssue("survivor")
	suite.Require().NoError(suite.repo.CreateWithKey(issue))
	suite.Require().NoError(suite.DB.Model(issue).Update("sprint_id", sprint.ID).Error)

	suite.Require().NoError(suite.DB.Delete(&models.Sprint{}, sprint.ID).Error)

	reloaded, err := suite.repo.GetByID(issue.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.SprintID)
}

// TestProjectDeleteCascades verifies issues go away with their project
func (suite *IssueRepositoryTestSuite) TestProjectDeleteCascades() {
	issue := suite.newIssue("doomed")
	suite.Require().NoError(suite.repo.CreateWithKey(issue))

	suite.Require().NoError(suite.projectRepo.Delete(suite.project.ID))

	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Zero(count)
}

// TestIssueRepositoryTestSuite runs the test suite
func TestIssueRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &IssueRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
