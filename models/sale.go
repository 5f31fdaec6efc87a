package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale 对应数据库中的 sales 表
// Amount/Price 是物化字段：每次商品关联集合变化时由 SaleService 重新计算并落库，
// 不做查询时的惰性聚合
type Sale struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;column:id" json:"id"`                 // ID: 销售单主键
	StoreID  uuid.UUID       `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"` // StoreID: 出售门店ID
	CityID   uuid.UUID       `gorm:"type:uuid;not null;index;column:city_id" json:"city_id"`   // CityID: 出售城市ID
	Amount   int             `gorm:"not null;column:amount" json:"amount"`                     // Amount: 关联商品数量
	Price    decimal.Decimal `gorm:"type:decimal(9,2);not null;column:price" json:"price"`     // Price: 关联商品价格合计
	SaleDate time.Time       `gorm:"column:sale_date;autoCreateTime" json:"sale_date"`         // SaleDate: 成交时间，创建后不再变更

	// 关联商品集合，通过 Product.SalesID 反向维护
	Products []Product `gorm:"foreignKey:SalesID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Product 对应数据库中的 product 表
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:id" json:"id"`                 // ID: 商品主键
	Name        string          `gorm:"size:255;not null;column:name" json:"name"`                // Name: 商品名称
	Description string          `gorm:"type:text;column:description" json:"description"`          // Description: 商品描述，可为空
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null;column:price" json:"price"`     // Price: 单价，非负
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"` // StoreID: 所属门店ID
	SalesID     *uuid.UUID      `gorm:"type:uuid;index;column:sales_id" json:"sales_id"`          // SalesID: 所属销售单ID，未售出时为 null
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`       // CreatedAt: 创建时间
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`       // UpdatedAt: 最后更新时间

	Store *Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

func (Product) TableName() string {
	return "product"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
