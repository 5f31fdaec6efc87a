package types

import "github.com/google/uuid"

type CreateSaleRequest struct {
	StoreID  uuid.UUID   `json:"store_id" binding:"required"`
	CityID   uuid.UUID   `json:"city_id" binding:"required"`
	Products []uuid.UUID `json:"products"` // 关联的商品ID列表，空列表在 service 层拒绝
}

type UpdateSaleRequest struct {
	ID       uuid.UUID   `json:"id" binding:"required"`
	StoreID  uuid.UUID   `json:"store_id" binding:"required"`
	CityID   uuid.UUID   `json:"city_id" binding:"required"`
	Products []uuid.UUID `json:"products"`
}

type DeleteSaleRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// ListSalesQuery 销售单列表的查询参数
// price/amount 用符号编码比较方向：5000 表示 >=5000，-5000 表示 <=5000
type ListSalesQuery struct {
	PageQuery
	City    string  `form:"city"`    // 城市ID
	Store   string  `form:"store"`   // 门店ID
	Product string  `form:"product"` // 商品ID
	Days    int     `form:"days"`    // 最近 N 天
	Price   float64 `form:"price"`
	Amount  int     `form:"amount"`
}
