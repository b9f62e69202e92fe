package dto

import (
	"time"

	"github.com/yukikurage/project-management-api/internal/models"
	"github.com/yukikurage/project-management-api/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID                  uint64  `json:"projectId"`
	UserID              uint64  `json:"projectUserId"`
	ProjectName         string  `json:"projectName"`
	ProjectDescription  string  `json:"projectDescription"`
	ProjectTech         string  `json:"projectTech,omitempty"`
	ProjectStatus       string  `json:"projectStatus,omitempty"`
	ProjectManager      string  `json:"projectManager,omitempty"`
	ProjectLead         string  `json:"projectLead,omitempty"`
	ProjectClient       string  `json:"projectClient,omitempty"`
	ManagementTool      string  `json:"managementTool,omitempty"`
	ManagementURL       string  `json:"managementUrl,omitempty"`
	RepoTool            string  `json:"repoTool,omitempty"`
	RepoURL             string  `json:"repoUrl,omitempty"`
	ProjectStartDate    *string `json:"projectStartDate,omitempty"`
	ProjectDeadlineDate *string `json:"projectDeadlineDate,omitempty"`
}

// ProjectSummaryDTO is the fixed projection returned after an edit. It
// carries only the editable text fields.
type ProjectSummaryDTO struct {
	ProjectName        string `json:"projectName"`
	ProjectTech        string `json:"projectTech"`
	ProjectStatus      string `json:"projectStatus"`
	ProjectManager     string `json:"projectManager"`
	ProjectLead        string `json:"projectLead"`
	ProjectClient      string `json:"projectClient"`
	ManagementTool     string `json:"managementTool"`
	ManagementURL      string `json:"managementUrl"`
	RepoTool           string `json:"repoTool"`
	RepoURL            string `json:"repoUrl"`
	ProjectDescription string `json:"projectDescription"`
}

// AddProjectRequest is the body of POST /projects/add
type AddProjectRequest struct {
	ProjectName         string `json:"projectName"`
	ProjectDescription  string `json:"projectDescription"`
	ProjectTech         string `json:"projectTech"`
	ProjectStatus       string `json:"projectStatus"`
	ProjectManager      string `json:"projectManager"`
	ProjectLead         string `json:"projectLead"`
	ProjectClient       string `json:"projectClient"`
	ManagementTool      string `json:"managementTool"`
	ManagementURL       string `json:"managementUrl"`
	RepoTool            string `json:"repoTool"`
	RepoURL             string `json:"repoUrl"`
	ProjectStartDate    string `json:"projectStartDate"`
	ProjectDeadlineDate string `json:"projectDeadlineDate"`
}

// PatchProjectRequest is the body of PATCH /projects/:projectId. Absent
// fields stay nil.
type PatchProjectRequest struct {
	ProjectName        *string `json:"projectName"`
	ProjectTech        *string `json:"projectTech"`
	ProjectStatus      *string `json:"projectStatus"`
	ProjectManager     *string `json:"projectManager"`
	ProjectLead        *string `json:"projectLead"`
	ProjectClient      *string `json:"projectClient"`
	ManagementTool     *string `json:"managementTool"`
	ManagementURL      *string `json:"managementUrl"`
	RepoTool           *string `json:"repoTool"`
	RepoURL            *string `json:"repoUrl"`
	ProjectDescription *string `json:"projectDescription"`
}

// EditProjectResponse is the body returned by a successful edit
type EditProjectResponse struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       []ProjectSummaryDTO `json:"data"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := utils.FormatTimestamp(*t)
	return &s
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:                  project.ID,
		UserID:              project.UserID,
		ProjectName:         project.Name,
		ProjectDescription:  project.Description,
		ProjectTech:         project.Tech,
		ProjectStatus:       project.Status,
		ProjectManager:      project.Manager,
		ProjectLead:         project.Lead,
		ProjectClient:       project.Client,
		ManagementTool:      project.ManagementTool,
		ManagementURL:       project.ManagementURL,
		RepoTool:            project.RepoTool,
		RepoURL:             project.RepoURL,
		ProjectStartDate:    formatDate(project.StartDate),
		ProjectDeadlineDate: formatDate(project.DeadlineDate),
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}

// ToProjectSummaryDTOs projects each project onto the editable fields
func ToProjectSummaryDTOs(projects []models.Project) []ProjectSummaryDTO {
	items := make([]ProjectSummaryDTO, len(projects))
	for i, p := range projects {
		items[i] = ProjectSummaryDTO{
			ProjectName:        p.Name,
			ProjectTech:        p.Tech,
			ProjectStatus:      p.Status,
			ProjectManager:     p.Manager,
			ProjectLead:        p.Lead,
			ProjectClient:      p.Client,
			ManagementTool:     p.ManagementTool,
			ManagementURL:      p.ManagementURL,
			RepoTool:           p.RepoTool,
			RepoURL:            p.RepoURL,
			ProjectDescription: p.Description,
		}
	}
	return items
}
