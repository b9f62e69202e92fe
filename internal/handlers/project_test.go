package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-management-api/internal/models"
)

// ProjectHandlerTestSuite exercises the project endpoints end to end
type ProjectHandlerTestSuite struct {
	suite.Suite
	env *testEnv

	aliceID    uint64
	aliceToken string
	bobID      uint64
	bobToken   string
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.aliceID, suite.aliceToken = suite.env.createUser(suite.T(), "alice@example.com")
	suite.bobID, suite.bobToken = suite.env.createUser(suite.T(), "bob@example.com")
}

func (suite *ProjectHandlerTestSuite) createProject(ownerID uint64, name string) *models.Project {
	project := &models.Project{
		UserID:      ownerID,
		Name:        name,
		Description: name + " description",
		Tech:        "Go",
		Status:      "planned",
	}
	suite.Require().NoError(suite.env.db.Create(project).Error)
	return project
}

func (suite *ProjectHandlerTestSuite) TestAddProject_Success() {
	w := suite.env.do(suite.T(), http.MethodPost, "/projects/add", " "+suite.aliceToken, map[string]string{
		"projectName":         "Website",
		"projectDescription":  "Company site",
		"projectTech":         "React",
		"repoUrl":             "https://example.com/repo",
		"projectStartDate":    "2024-03-01",
		"projectDeadlineDate": "2024-06-30T12:00:00+02:00",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	data := body["data"].(map[string]interface{})
	project := data["project"].(map[string]interface{})
	suite.Equal("Website", project["projectName"])
	suite.Equal(float64(suite.aliceID), project["projectUserId"])
	suite.Equal("https://example.com/repo", project["repoUrl"])
	suite.Equal("2024-03-01T00:00:00.000Z", project["projectStartDate"])
	suite.Equal("2024-06-30T10:00:00.000Z", project["projectDeadlineDate"])

	var stored models.Project
	suite.Require().NoError(suite.env.db.First(&stored, uint64(project["projectId"].(float64))).Error)
	suite.Equal(suite.aliceID, stored.UserID)
}

func (suite *ProjectHandlerTestSuite) TestAddProject_Validation() {
	tests := []struct {
		name    string
		payload map[string]string
		message string
	}{
		{"missing name", map[string]string{"projectDescription": "d"}, "Fields can't be empty."},
		{"blank description", map[string]string{"projectName": "n", "projectDescription": "   "}, "Fields can't be empty."},
		{"bad date", map[string]string{"projectName": "n", "projectDescription": "d", "projectStartDate": "tomorrow"}, "Invalid date format."},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.env.do(suite.T(), http.MethodPost, "/projects/add", suite.aliceToken, tt.payload)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal(tt.message, decodeBody(suite.T(), w)["message"])
		})
	}

	var count int64
	suite.env.db.Model(&models.Project{}).Count(&count)
	suite.Zero(count)
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	first := suite.createProject(suite.aliceID, "First")
	second := suite.createProject(suite.aliceID, "Second")
	suite.createProject(suite.bobID, "Bob's")

	w := suite.env.do(suite.T(), http.MethodGet, "/projects", suite.aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	data := decodeBody(suite.T(), w)["data"].(map[string]interface{})
	projects := data["projects"].([]interface{})
	suite.Require().Len(projects, 2)
	suite.Equal(float64(first.ID), projects[0].(map[string]interface{})["projectId"])
	suite.Equal(float64(second.ID), projects[1].(map[string]interface{})["projectId"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_EmptyIsNotFound() {
	w := suite.env.do(suite.T(), http.MethodGet, "/projects", suite.aliceToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No projects found.", decodeBody(suite.T(), w)["message"])
}

func (suite *ProjectHandlerTestSuite) TestGetProject() {
	project := suite.createProject(suite.aliceID, "Mine")

	w := suite.env.do(suite.T(), http.MethodGet, fmt.Sprintf("/project/%d", project.ID), suite.aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	data := decodeBody(suite.T(), w)["data"].(map[string]interface{})
	suite.Equal("Mine", data["projectName"])

	for _, path := range []string{"/project/999", "/project/abc"} {
		w = suite.env.do(suite.T(), http.MethodGet, path, suite.aliceToken, nil)
		suite.Equal(http.StatusNotFound, w.Code, path)
		suite.Equal("Project not found.", decodeBody(suite.T(), w)["message"])
	}
}

func (suite *ProjectHandlerTestSuite) TestEditProject() {
	project := suite.createProject(suite.aliceID, "Old name")
	suite.createProject(suite.aliceID, "Other")

	w := suite.env.do(suite.T(), http.MethodPatch, fmt.Sprintf("/projects/%d", project.ID), suite.aliceToken, map[string]interface{}{
		"projectName":   "New name",
		"projectStatus": "",
		"projectLead":   nil,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	suite.Equal(float64(http.StatusOK), body["statusCode"])
	suite.Equal("Project updated successfully", body["message"])

	data := body["data"].([]interface{})
	suite.Require().Len(data, 2)
	updated := data[0].(map[string]interface{})
	suite.Equal("New name", updated["projectName"])
	suite.Equal("planned", updated["projectStatus"])
	suite.Len(updated, 11)
	suite.NotContains(updated, "projectId")

	var stored models.Project
	suite.Require().NoError(suite.env.db.First(&stored, project.ID).Error)
	suite.Equal("New name", stored.Name)
	suite.Equal("Go", stored.Tech)
}

func (suite *ProjectHandlerTestSuite) TestEditProject_NoFields() {
	project := suite.createProject(suite.aliceID, "Mine")

	w := suite.env.do(suite.T(), http.MethodPatch, fmt.Sprintf("/projects/%d", project.ID), suite.aliceToken, map[string]interface{}{
		"projectName": "",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("At least one field must be provided.", decodeBody(suite.T(), w)["message"])
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	project := suite.createProject(suite.aliceID, "Mine")

	w := suite.env.do(suite.T(), http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), suite.aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{}`, w.Body.String())

	w = suite.env.do(suite.T(), http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), suite.aliceToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Project does not exist.", decodeBody(suite.T(), w)["message"])
}

// TestOwnerIsolation checks that another user's project behaves exactly like
// a missing one on every endpoint.
func (suite *ProjectHandlerTestSuite) TestOwnerIsolation() {
	project := suite.createProject(suite.aliceID, "Alice's")
	path := fmt.Sprintf("/projects/%d", project.ID)

	w := suite.env.do(suite.T(), http.MethodGet, fmt.Sprintf("/project/%d", project.ID), suite.bobToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodPatch, path, suite.bobToken, map[string]string{"projectName": "Hijacked"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodDelete, path, suite.bobToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodGet, "/projects", suite.bobToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.env.db.First(&stored, project.ID).Error)
	suite.Equal("Alice's", stored.Name)
}

func (suite *ProjectHandlerTestSuite) TestRequiresToken() {
	project := suite.createProject(suite.aliceID, "Mine")

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/projects/add"},
		{http.MethodGet, "/projects"},
		{http.MethodGet, fmt.Sprintf("/project/%d", project.ID)},
		{http.MethodPatch, fmt.Sprintf("/projects/%d", project.ID)},
		{http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID)},
	}

	for _, r := range requests {
		w := suite.env.do(suite.T(), r.method, r.path, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, r.path)

		w = suite.env.do(suite.T(), r.method, r.path, "not-a-token", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, r.path)
	}
}

func (suite *ProjectHandlerTestSuite) TestPersistenceFailure() {
	sqlDB, err := suite.env.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	w := suite.env.do(suite.T(), http.MethodGet, "/projects", suite.aliceToken, nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	body := decodeBody(suite.T(), w)
	suite.Equal("INTERNAL_ERROR", body["code"])
	suite.Equal("Error retrieving projects.", body["message"])

	w = suite.env.do(suite.T(), http.MethodPost, "/projects/add", suite.aliceToken, map[string]string{
		"projectName":        "n",
		"projectDescription": "d",
	})
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Error adding project.", decodeBody(suite.T(), w)["message"])
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
