package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-management-api/internal/models"
	"github.com/yukikurage/project-management-api/internal/repository"
	"github.com/yukikurage/project-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectFieldsRequired = errors.New("project name and description are required")
	ErrInvalidProjectDate    = errors.New("invalid project date")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided")
	ErrProjectNotFound       = errors.New("project not found")
	ErrNoProjects            = errors.New("no projects found")
)

// ProjectService handles project business logic. All lookups are scoped to
// the calling user.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// ProjectFields holds the free-text attributes of a project.
type ProjectFields struct {
	Name           string
	Description    string
	Tech           string
	Status         string
	Manager        string
	Lead           string
	Client         string
	ManagementTool string
	ManagementURL  string
	RepoTool       string
	RepoURL        string
}

// AddProjectInput represents input for creating a project
type AddProjectInput struct {
	ProjectFields
	StartDate    string
	DeadlineDate string
}

// PatchProjectInput represents a partial update. Nil fields are left untouched.
type PatchProjectInput struct {
	Name           *string
	Description    *string
	Tech           *string
	Status         *string
	Manager        *string
	Lead           *string
	Client         *string
	ManagementTool *string
	ManagementURL  *string
	RepoTool       *string
	RepoURL        *string
}

// updates maps the supplied fields onto their columns. Empty strings count
// as not supplied.
func (in PatchProjectInput) updates() map[string]interface{} {
	columns := []struct {
		column string
		value  *string
	}{
		{"name", in.Name},
		{"description", in.Description},
		{"tech", in.Tech},
		{"status", in.Status},
		{"manager", in.Manager},
		{"lead", in.Lead},
		{"client", in.Client},
		{"management_tool", in.ManagementTool},
		{"management_url", in.ManagementURL},
		{"repo_tool", in.RepoTool},
		{"repo_url", in.RepoURL},
	}

	updates := make(map[string]interface{}, len(columns))
	for _, col := range columns {
		if col.value != nil && *col.value != "" {
			updates[col.column] = *col.value
		}
	}
	return updates
}

// AddProject creates a project owned by userID
func (s *ProjectService) AddProject(ctx context.Context, userID uint64, input AddProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrProjectFieldsRequired
	}

	startDate, err := parseProjectDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	deadlineDate, err := parseProjectDate(input.DeadlineDate)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:         userID,
		Name:           input.Name,
		Description:    input.Description,
		Tech:           input.Tech,
		Status:         input.Status,
		Manager:        input.Manager,
		Lead:           input.Lead,
		Client:         input.Client,
		ManagementTool: input.ManagementTool,
		ManagementURL:  input.ManagementURL,
		RepoTool:       input.RepoTool,
		RepoURL:        input.RepoURL,
		StartDate:      startDate,
		DeadlineDate:   deadlineDate,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns every project owned by userID. An empty result is
// reported as ErrNoProjects.
func (s *ProjectService) ListProjects(ctx context.Context, userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}
	return projects, nil
}

// GetProject returns a project owned by userID
func (s *ProjectService) GetProject(ctx context.Context, userID, projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(ctx, userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// EditProject applies a partial update to a project owned by userID and
// returns all of the user's projects afterwards.
func (s *ProjectService) EditProject(ctx context.Context, userID, projectID uint64, input PatchProjectInput) ([]models.Project, error) {
	updates := input.updates()
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if _, err := s.GetProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	if err := s.projectRepo.UpdateOwned(ctx, userID, projectID, updates); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	projects, err := s.projectRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// DeleteProject deletes a project owned by userID
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	if err := s.projectRepo.DeleteOwned(ctx, userID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func parseProjectDate(value string) (*time.Time, error) {
	date, err := utils.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProjectDate, err)
	}
	return date, nil
}
