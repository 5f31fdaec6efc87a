package types

import "github.com/google/uuid"

type CreateStoreRequest struct {
	Name   string    `json:"name" binding:"required"`    // 门店名称
	CityID uuid.UUID `json:"city_id" binding:"required"` // 所属城市，必须已存在
}

type UpdateStoreRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Name   string    `json:"name" binding:"required"`
	CityID uuid.UUID `json:"city_id" binding:"required"`
}

type DeleteStoreRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}
