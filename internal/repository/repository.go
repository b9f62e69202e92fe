package repository

import (
	"context"

	"github.com/yukikurage/project-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
// Every method except Create is scoped to the owning user.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindOwned finds a project by ID owned by userID
	FindOwned(ctx context.Context, userID, projectID uint64) (*models.Project, error)

	// ListOwned lists every project owned by userID ordered by ID
	ListOwned(ctx context.Context, userID uint64) ([]models.Project, error)

	// UpdateOwned applies the given column updates to a project owned by userID
	UpdateOwned(ctx context.Context, userID, projectID uint64, updates map[string]interface{}) error

	// DeleteOwned deletes a project owned by userID
	DeleteOwned(ctx context.Context, userID, projectID uint64) error
}
