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

type StoreHandler struct {
	StoreService service.IStoreService
}

func (h *StoreHandler) RegisterRouter(r gin.IRouter) {
	stores := r.Group("/v1/store")
	stores.POST("", context.Wrap(h.CreateStore))
	stores.GET("/:store_id", context.Wrap(h.GetStore))
	stores.GET("", context.Wrap(h.ListStores))
	stores.PUT("", context.Wrap(h.UpdateStore))
	stores.DELETE("", context.Wrap(h.DeleteStore))
}

func (h *StoreHandler) CreateStore(c *gin.Context) error {
	var req types.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	store, err := h.StoreService.CreateStore(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, store)
	return nil
}

func (h *StoreHandler) GetStore(c *gin.Context) error {
	storeID, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		return response.BadRequest(err.Error())
	}

	store, err := h.StoreService.GetStore(c.Request.Context(), storeID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, store)
	return nil
}

func (h *StoreHandler) ListStores(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.BadRequest(err.Error())
	}

	result, err := h.StoreService.ListStores(c.Request.Context(), &page)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, result)
	return nil
}

func (h *StoreHandler) UpdateStore(c *gin.Context) error {
	var req types.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	store, err := h.StoreService.UpdateStore(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, store)
	return nil
}

func (h *StoreHandler) DeleteStore(c *gin.Context) error {
	var req types.DeleteStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	if err := h.StoreService.DeleteStore(c.Request.Context(), req.ID); err != nil {
		return err
	}
	response.Deleted(c)
	return nil
}
