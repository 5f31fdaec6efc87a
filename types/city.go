package types

import "github.com/google/uuid"

type CreateCityRequest struct {
	Name string `json:"name" binding:"required"` // 城市名称
}

type UpdateCityRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required"`
}

type DeleteCityRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}
