package service

import (
	"Retail/types"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCity(t *testing.T) {
	env := newTestEnv(t)

	city, err := env.city.CreateCity(context.Background(), &types.CreateCityRequest{Name: "Springfield"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, city.ID)
	assert.Equal(t, "Springfield", city.Name)
}

func TestGetCity_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.city.GetCity(context.Background(), uuid.New())
	assertBizError(t, err, http.StatusNotFound, "Data with such ID not found.")
}

func TestUpdateCity_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.city.UpdateCity(context.Background(), &types.UpdateCityRequest{
		ID:   uuid.New(),
		Name: "nowhere",
	})
	assertBizError(t, err, http.StatusNotFound, "Can't update data with this ID.")
}

func TestDeleteCity_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.city.DeleteCity(context.Background(), uuid.New())
	assertBizError(t, err, http.StatusNotFound, "Can't delete data with this ID.")
}

// 25 行数据按 size=10 翻页应该是 10/10/5
// next 只在本页满员时给出，prev 只在非首页给出
func TestListCities_Pagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := env.city.CreateCity(ctx, &types.CreateCityRequest{Name: fmt.Sprintf("city-%02d", i)})
		require.NoError(t, err)
	}

	page1, err := env.city.ListCities(ctx, &types.PageQuery{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	assert.Nil(t, page1.Links.Prev)
	require.NotNil(t, page1.Links.Next)
	assert.Equal(t, 2, *page1.Links.Next)

	page2, err := env.city.ListCities(ctx, &types.PageQuery{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 10)
	require.NotNil(t, page2.Links.Prev)
	assert.Equal(t, 1, *page2.Links.Prev)
	require.NotNil(t, page2.Links.Next)
	assert.Equal(t, 3, *page2.Links.Next)

	page3, err := env.city.ListCities(ctx, &types.PageQuery{Page: 3, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Data, 5)
	require.NotNil(t, page3.Links.Prev)
	assert.Equal(t, 2, *page3.Links.Prev)
	assert.Nil(t, page3.Links.Next)
}

// next 是启发式游标：总数恰好整除页大小时最后一页之后还会给 next，
// 下一页拿到空列表
func TestListCities_HeuristicNext(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := env.city.CreateCity(ctx, &types.CreateCityRequest{Name: fmt.Sprintf("city-%02d", i)})
		require.NoError(t, err)
	}

	page1, err := env.city.ListCities(ctx, &types.PageQuery{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	require.NotNil(t, page1.Links.Next)

	page2, err := env.city.ListCities(ctx, &types.PageQuery{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 0)
	assert.Nil(t, page2.Links.Next)
}

func TestGetCity_EagerLoadsStores(t *testing.T) {
	env := newTestEnv(t)
	city, _ := env.newCityStore(t)

	got, err := env.city.GetCity(context.Background(), city.ID)
	require.NoError(t, err)
	require.Len(t, got.Stores, 1)
	assert.Equal(t, "Main St", got.Stores[0].Name)
}
