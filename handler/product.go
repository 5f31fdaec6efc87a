package handler

import (
	"Retail/pkg/context"
	"Retail/pkg/response"
	"Retail/service"
	"Retail/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	ProductService service.IProductService
}

func (h *ProductHandler) RegisterRouter(r gin.IRouter) {
	products := r.Group("/v1/product")
	products.POST("", context.Wrap(h.CreateProduct))
	products.GET("/:product_id", context.Wrap(h.GetProduct))
	products.GET("", context.Wrap(h.ListProducts))
	products.PUT("", context.Wrap(h.UpdateProduct))
	products.DELETE("", context.Wrap(h.DeleteProduct))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	product, err := h.ProductService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, product)
	return nil
}

func (h *ProductHandler) GetProduct(c *gin.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return response.BadRequest(err.Error())
	}

	product, err := h.ProductService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, product)
	return nil
}

func (h *ProductHandler) ListProducts(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.BadRequest(err.Error())
	}

	result, err := h.ProductService.ListProducts(c.Request.Context(), &page)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, result)
	return nil
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) error {
	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	product, err := h.ProductService.UpdateProduct(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, product)
	return nil
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) error {
	var req types.DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	if err := h.ProductService.DeleteProduct(c.Request.Context(), req.ID); err != nil {
		return err
	}
	response.Deleted(c)
	return nil
}
