package dao

import (
	"Retail/models"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.City{}, &models.Store{}, &models.Sale{}, &models.Product{})
	require.NoError(t, err)

	return db
}

func TestRepoFindOne_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)

	_, err := repo.FindOne(context.Background(), nil, "name = ?", "nowhere")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoCreateAndFindOne(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)
	ctx := context.Background()

	city := &models.City{Name: "Springfield"}
	require.NoError(t, repo.Create(ctx, city))

	got, err := repo.FindOne(ctx, nil, "id = ?", city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", got.Name)
	assert.Equal(t, city.ID, got.ID)
}

func TestRepoFindPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &models.City{Name: fmt.Sprintf("city-%d", i)}))
	}

	page1, err := repo.FindPage(ctx, 5, 0, "")
	require.NoError(t, err)
	assert.Len(t, page1, 5)

	page2, err := repo.FindPage(ctx, 5, 5, "")
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestRepoUpdateByWhere(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)
	ctx := context.Background()

	city := &models.City{Name: "old name"}
	require.NoError(t, repo.Create(ctx, city))

	got, err := repo.UpdateByWhere(ctx, map[string]any{"name": "new name"}, "id = ?", city.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", got.Name)
}

func TestRepoUpdateByWhere_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)

	_, err := repo.UpdateByWhere(context.Background(), map[string]any{"name": "x"}, "name = ?", "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoDeleteByWhere(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)
	ctx := context.Background()

	city := &models.City{Name: "to delete"}
	require.NoError(t, repo.Create(ctx, city))

	require.NoError(t, repo.DeleteByWhere(ctx, "id = ?", city.ID))

	_, err := repo.FindOne(ctx, nil, "id = ?", city.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoDeleteByWhere_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)

	// 先查再删：对不存在的行报 not found 而不是静默成功
	err := repo.DeleteByWhere(context.Background(), "name = ?", "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoIsExist(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo[models.City](db)
	ctx := context.Background()

	city := &models.City{Name: "exists"}
	require.NoError(t, repo.Create(ctx, city))

	exist, err := repo.IsExist(ctx, "id = ?", city.ID)
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = repo.IsExist(ctx, "name = ?", "missing")
	require.NoError(t, err)
	assert.False(t, exist)
}
