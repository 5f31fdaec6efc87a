package types

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name        string    `json:"name" binding:"required"`     // 商品名称
	Description string    `json:"description"`                 // 商品描述，可为空
	Price       float64   `json:"price" binding:"min=0"`       // 单价，负数在绑定层拒绝
	StoreID     uuid.UUID `json:"store_id" binding:"required"` // 所属门店，必须已存在
}

type UpdateProductRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"min=0"`
	StoreID     uuid.UUID `json:"store_id" binding:"required"`
}

type DeleteProductRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}
