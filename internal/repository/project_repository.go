package repository

import (
	"context"

	"github.com/yukikurage/project-management-api/internal/database"
	"github.com/yukikurage/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// owned starts a projects query restricted to userID
func (r *GormProjectRepository) owned(ctx context.Context, userID uint64) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Project{}).Scopes(database.OwnedBy(userID))
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindOwned finds a project by ID owned by userID
func (r *GormProjectRepository) FindOwned(ctx context.Context, userID, projectID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.owned(ctx, userID).Where("projects.id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListOwned lists every project owned by userID
func (r *GormProjectRepository) ListOwned(ctx context.Context, userID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.owned(ctx, userID).Order("projects.id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateOwned applies updates to a project owned by userID. Rows owned by
// other users are never touched.
func (r *GormProjectRepository) UpdateOwned(ctx context.Context, userID, projectID uint64, updates map[string]interface{}) error {
	return r.owned(ctx, userID).Where("projects.id = ?", projectID).Updates(updates).Error
}

// DeleteOwned deletes a project owned by userID. It returns
// gorm.ErrRecordNotFound when no owned row matched.
func (r *GormProjectRepository) DeleteOwned(ctx context.Context, userID, projectID uint64) error {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("projects.id = ?", projectID).
		Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
