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

type CityHandler struct {
	CityService service.ICityService
}

func (h *CityHandler) RegisterRouter(r gin.IRouter) {
	cities := r.Group("/v1/city")
	cities.POST("", context.Wrap(h.CreateCity))      // 新建城市
	cities.GET("/:city_id", context.Wrap(h.GetCity)) // 城市详情，带下属门店
	cities.GET("", context.Wrap(h.ListCities))       // 城市分页列表
	cities.PUT("", context.Wrap(h.UpdateCity))       // 更新城市
	cities.DELETE("", context.Wrap(h.DeleteCity))    // 删除城市，级联删门店
}

func (h *CityHandler) CreateCity(c *gin.Context) error {
	var req types.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	city, err := h.CityService.CreateCity(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, city)
	return nil
}

func (h *CityHandler) GetCity(c *gin.Context) error {
	cityID, err := uuid.Parse(c.Param("city_id"))
	if err != nil {
		return response.BadRequest(err.Error())
	}

	city, err := h.CityService.GetCity(c.Request.Context(), cityID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, city)
	return nil
}

func (h *CityHandler) ListCities(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.BadRequest(err.Error())
	}

	result, err := h.CityService.ListCities(c.Request.Context(), &page)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, result)
	return nil
}

func (h *CityHandler) UpdateCity(c *gin.Context) error {
	var req types.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	city, err := h.CityService.UpdateCity(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, city)
	return nil
}

func (h *CityHandler) DeleteCity(c *gin.Context) error {
	var req types.DeleteCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	if err := h.CityService.DeleteCity(c.Request.Context(), req.ID); err != nil {
		return err
	}
	response.Deleted(c)
	return nil
}
