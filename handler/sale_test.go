package handler

import (
	"Retail/models"
	"Retail/types"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 走完整 HTTP 链路搭好 城市→门店→商品 的夹具
func seedSaleFixtures(t *testing.T, r *gin.Engine) (city, store, product string) {
	w := doJSON(r, http.MethodPost, "/api/v1/city", `{"name":"Springfield"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c models.City
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))

	w = doJSON(r, http.MethodPost, "/api/v1/store", fmt.Sprintf(`{"name":"Main St","city_id":"%s"}`, c.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s models.Store
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))

	w = doJSON(r, http.MethodPost, "/api/v1/product",
		fmt.Sprintf(`{"name":"Widget","price":9.99,"store_id":"%s"}`, s.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

	return c.ID.String(), s.ID.String(), p.ID.String()
}

func TestSaleEndpoints_CreateAndFilter(t *testing.T) {
	r, _ := newTestRouter(t)
	city, store, product := seedSaleFixtures(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sales",
		fmt.Sprintf(`{"store_id":"%s","city_id":"%s","products":["%s"]}`, store, city, product))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale models.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, 1, sale.Amount)
	require.Len(t, sale.Products, 1)

	// 按商品成员过滤
	w = doJSON(r, http.MethodGet, "/api/v1/sales?product="+product, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page types.Page[models.Sale]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Data, 1)

	// 符号编码的价格阈值：-5 表示 price <= 5，过滤掉这单
	w = doJSON(r, http.MethodGet, "/api/v1/sales?price=-5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Data, 0)
}

func TestSaleEndpoints_EmptyProducts(t *testing.T) {
	r, _ := newTestRouter(t)
	city, store, _ := seedSaleFixtures(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sales",
		fmt.Sprintf(`{"store_id":"%s","city_id":"%s","products":[]}`, store, city))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Products cannot be empty."}`, w.Body.String())
}

func TestSaleEndpoints_InvalidFilterUUID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/sales?city=not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
