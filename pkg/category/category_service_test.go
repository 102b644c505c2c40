package category

import (
	"context"
	"fmt"
	"testing"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Category{}))
	return db
}

func TestCreateCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(NewCategoryRepository(db))

	res, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name: "Dairy",
		Icon: "milk",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dairy", res.Name)
	assert.Equal(t, "#000000", res.Color)

	// Names are unique.
	_, err = service.CreateCategory(context.Background(), domain.CreateCategoryRequest{Name: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestGetCategoriesSortedByName(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(NewCategoryRepository(db))

	for _, name := range []string{"Snacks", "Dairy", "Produce"} {
		_, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Dairy", categories[0].Name)
	assert.Equal(t, "Produce", categories[1].Name)
	assert.Equal(t, "Snacks", categories[2].Name)
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(NewCategoryRepository(db))

	created, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)

	err = service.UpdateCategory(context.Background(), created.ID, domain.UpdateCategoryRequest{Color: "#FFBB00"})
	require.NoError(t, err)

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "#FFBB00", categories[0].Color)

	err = service.UpdateCategory(context.Background(), uuid.NewString(), domain.UpdateCategoryRequest{Name: "Frozen"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteCategory(context.Background(), created.ID), domain.ErrCategoryNotFound)
}
