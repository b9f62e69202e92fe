package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management-api/internal/dto"
	apierrors "github.com/yukikurage/project-management-api/internal/errors"
	"github.com/yukikurage/project-management-api/internal/middleware"
	"github.com/yukikurage/project-management-api/internal/services"
	"go.uber.org/zap"
)

// ProjectHandler serves the project endpoints. Every operation is scoped to
// the user resolved by RequireToken.
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// AddProject creates a project for the current user
func (h *ProjectHandler) AddProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	project, err := h.projectService.AddProject(c.Request.Context(), userID, services.AddProjectInput{
		ProjectFields: services.ProjectFields{
			Name:           req.ProjectName,
			Description:    req.ProjectDescription,
			Tech:           req.ProjectTech,
			Status:         req.ProjectStatus,
			Manager:        req.ProjectManager,
			Lead:           req.ProjectLead,
			Client:         req.ProjectClient,
			ManagementTool: req.ManagementTool,
			ManagementURL:  req.ManagementURL,
			RepoTool:       req.RepoTool,
			RepoURL:        req.RepoURL,
		},
		StartDate:    req.ProjectStartDate,
		DeadlineDate: req.ProjectDeadlineDate,
	})
	if err != nil {
		h.respondProjectError(c, err, "Error adding project.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"project": dto.ToProjectDTO(*project)},
	})
}

// ListProjects returns all projects of the current user
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.respondProjectError(c, err, "Error retrieving projects.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"projects": dto.ToProjectDTOs(projects)},
	})
}

// GetProject returns one project of the current user
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, ok := parseProjectID(c.Param("id"))
	if !ok {
		apierrors.NotFound(c, "Project not found.")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, projectID)
	if err != nil {
		h.respondProjectError(c, err, "Error retrieving project.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToProjectDTO(*project),
	})
}

// EditProject applies a partial update and returns the user's projects
func (h *ProjectHandler) EditProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, ok := parseProjectID(c.Param("projectId"))
	if !ok {
		apierrors.NotFound(c, "Project not found.")
		return
	}

	var req dto.PatchProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	projects, err := h.projectService.EditProject(c.Request.Context(), userID, projectID, services.PatchProjectInput{
		Name:           req.ProjectName,
		Description:    req.ProjectDescription,
		Tech:           req.ProjectTech,
		Status:         req.ProjectStatus,
		Manager:        req.ProjectManager,
		Lead:           req.ProjectLead,
		Client:         req.ProjectClient,
		ManagementTool: req.ManagementTool,
		ManagementURL:  req.ManagementURL,
		RepoTool:       req.RepoTool,
		RepoURL:        req.RepoURL,
	})
	if err != nil {
		h.respondProjectError(c, err, "Error updating project.")
		return
	}

	c.JSON(http.StatusOK, dto.EditProjectResponse{
		StatusCode: http.StatusOK,
		Message:    "Project updated successfully",
		Data:       dto.ToProjectSummaryDTOs(projects),
	})
}

// DeleteProject removes a project of the current user
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, ok := parseProjectID(c.Param("id"))
	if !ok {
		apierrors.NotFound(c, "Project does not exist.")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project does not exist.")
			return
		}
		h.respondProjectError(c, err, "Error deleting project.")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// respondProjectError maps service errors to responses. internalMessage is
// used for anything that is not a client error; the cause is only logged.
func (h *ProjectHandler) respondProjectError(c *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, services.ErrProjectFieldsRequired):
		apierrors.BadRequest(c, "Fields can't be empty.")
	case errors.Is(err, services.ErrInvalidProjectDate):
		apierrors.BadRequest(c, "Invalid date format.")
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		apierrors.BadRequest(c, "At least one field must be provided.")
	case errors.Is(err, services.ErrNoProjects):
		apierrors.NotFound(c, "No projects found.")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found.")
	default:
		h.logger.Error(internalMessage,
			zap.Error(err),
			zap.String("path", c.FullPath()),
		)
		apierrors.InternalError(c, internalMessage)
	}
}

func requireUserID(c *gin.Context) (uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No token provided.")
		return 0, false
	}
	return userID, true
}

func parseProjectID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
