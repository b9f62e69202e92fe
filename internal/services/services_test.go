package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-management-api/internal/database"
	"github.com/yukikurage/project-management-api/internal/models"
	"github.com/yukikurage/project-management-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.MigrateDatabase(db))
	return db
}

type stubIssuer struct {
	userID uint64
	email  string
	roleID uint64
	err    error
}

func (s *stubIssuer) Issue(userID uint64, email string, roleID uint64) (string, error) {
	s.userID, s.email, s.roleID = userID, email, roleID
	if s.err != nil {
		return "", s.err
	}
	return "signed-token", nil
}

var errStoreDown = errors.New("connection refused")

// failingProjectRepo simulates a database outage.
type failingProjectRepo struct{}

func (failingProjectRepo) Create(context.Context, *models.Project) error { return errStoreDown }
func (failingProjectRepo) FindOwned(context.Context, uint64, uint64) (*models.Project, error) {
	return nil, errStoreDown
}
func (failingProjectRepo) ListOwned(context.Context, uint64) ([]models.Project, error) {
	return nil, errStoreDown
}
func (failingProjectRepo) UpdateOwned(context.Context, uint64, uint64, map[string]interface{}) error {
	return errStoreDown
}
func (failingProjectRepo) DeleteOwned(context.Context, uint64, uint64) error { return errStoreDown }

var _ repository.ProjectRepository = failingProjectRepo{}
