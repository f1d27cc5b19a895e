package service_test

import (
	"testing"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"
	"devflow-backend/internal/service"
	"devflow-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite exercises project creation rules against a
// real Postgres
type ProjectServiceTestSuite struct {
	*testutils.BaseTestSuite
	svc  *service.ProjectService
	team *models.Team
}

// SetupTest prepares a fresh team for every test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.svc = service.NewProjectService(
		repository.NewProjectRepository(suite.DB),
		repository.NewTeamRepository(suite.DB),
		validator.New(),
	)

	suite.team = testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(suite.team).Error)
}

func (suite *ProjectServiceTestSuite) createProject(name, key string) *service.ProjectResponse {
	project, err := suite.svc.Create(&service.CreateProjectRequest{
		TeamID: suite.team.ID,
		Name:   name,
		Key:    key,
	})
	suite.Require().NoError(err)
	return project
}

// TestCreateUppercasesKey verifies the key is stored uppercase
func (suite *ProjectServiceTestSuite) TestCreateUppercasesKey() {
	project := suite.createProject("Web Frontend", "web")
	suite.Equal("WEB", project.Key)
}

// TestCreateRejectsDigitFirstKey verifies keys must start with a letter
func (suite *ProjectServiceTestSuite) TestCreateRejectsDigitFirstKey() {
	_, err := suite.svc.Create(&service.CreateProjectRequest{
		TeamID: suite.team.ID,
		Name:   "Numbered",
		Key:    "9AB",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "start with a letter")

	// A digit after the leading letter is fine
	project := suite.createProject("Mixed", "v2x")
	suite.Equal("V2X", project.Key)
}

// TestCreateRejectsSymbolKey verifies keys only carry letters and digits
func (suite *ProjectServiceTestSuite) TestCreateRejectsSymbolKey() {
	_, err := suite.svc.Create(&service.CreateProjectRequest{
		TeamID: suite.team.ID,
		Name:   "Dashed",
		Key:    "WEB-1",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateDuplicateKey verifies the key uniqueness check
func (suite *ProjectServiceTestSuite) TestCreateDuplicateKey() {
	suite.createProject("Web Frontend", "WEB")

	_, err := suite.svc.Create(&service.CreateProjectRequest{
		TeamID: suite.team.ID,
		Name:   "Copycat",
		Key:    "web",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestListByTeam verifies the team scoped listing
func (suite *ProjectServiceTestSuite) TestListByTeam() {
	suite.createProject("Web Frontend", "WEB")
	suite.createProject("Mobile App", "MOB")

	other := testutils.NewTeamFactory().Create()
	suite.Require().NoError(suite.DB.Create(other).Error)
	theirs := testutils.NewProjectFactory().Create(other.ID)
	suite.Require().NoError(suite.DB.Create(theirs).Error)

	page, err := suite.svc.ListByTeam(suite.team.ID, query.Params{})
	suite.Require().NoError(err)
	suite.Len(page.Items, 2)
	suite.Equal(int64(2), page.Meta.Total)

	_, err = suite.svc.ListByTeam(99999, query.Params{})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, &ProjectServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
