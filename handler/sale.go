package handler

import (
	"Retail/dao"
	"Retail/pkg/context"
	"Retail/pkg/response"
	"Retail/service"
	"Retail/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct {
	SaleService service.ISaleService
}

func (h *SaleHandler) RegisterRouter(r gin.IRouter) {
	sales := r.Group("/v1/sales")
	sales.POST("", context.Wrap(h.CreateSale))      // 新建销售单并挂接商品
	sales.GET("/:sale_id", context.Wrap(h.GetSale)) // 销售单详情，带关联商品
	sales.GET("", context.Wrap(h.ListSales))        // 组合过滤 + 分页
	sales.PUT("", context.Wrap(h.UpdateSale))
	sales.DELETE("", context.Wrap(h.DeleteSale))
}

func (h *SaleHandler) CreateSale(c *gin.Context) error {
	var req types.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	sale, err := h.SaleService.CreateSale(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, sale)
	return nil
}

func (h *SaleHandler) GetSale(c *gin.Context) error {
	saleID, err := uuid.Parse(c.Param("sale_id"))
	if err != nil {
		return response.BadRequest(err.Error())
	}

	sale, err := h.SaleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, sale)
	return nil
}

func (h *SaleHandler) ListSales(c *gin.Context) error {
	var query types.ListSalesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.BadRequest(err.Error())
	}

	filter, err := buildSaleFilter(&query)
	if err != nil {
		return err
	}

	result, err := h.SaleService.ListSales(c.Request.Context(), &query.PageQuery, filter)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, result)
	return nil
}

func (h *SaleHandler) UpdateSale(c *gin.Context) error {
	var req types.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	sale, err := h.SaleService.UpdateSale(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, sale)
	return nil
}

func (h *SaleHandler) DeleteSale(c *gin.Context) error {
	var req types.DeleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	if err := h.SaleService.DeleteSale(c.Request.Context(), req.ID); err != nil {
		return err
	}
	response.Deleted(c)
	return nil
}

// buildSaleFilter 解析查询参数里的过滤条件，非法 UUID 直接 400
func buildSaleFilter(query *types.ListSalesQuery) (*dao.SaleFilter, error) {
	filter := &dao.SaleFilter{
		Days:   query.Days,
		Price:  query.Price,
		Amount: query.Amount,
	}

	if query.City != "" {
		cityID, err := uuid.Parse(query.City)
		if err != nil {
			return nil, response.NewError(http.StatusBadRequest, err.Error())
		}
		filter.CityID = &cityID
	}

	if query.Store != "" {
		storeID, err := uuid.Parse(query.Store)
		if err != nil {
			return nil, response.NewError(http.StatusBadRequest, err.Error())
		}
		filter.StoreID = &storeID
	}

	if query.Product != "" {
		productID, err := uuid.Parse(query.Product)
		if err != nil {
			return nil, response.NewError(http.StatusBadRequest, err.Error())
		}
		filter.ProductID = &productID
	}

	return filter, nil
}
