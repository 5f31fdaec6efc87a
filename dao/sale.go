package dao

import (
	"Retail/models"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sale struct {
	Repo[models.Sale]
}

func NewSale(db *gorm.DB) *Sale {
	return &Sale{
		Repo: NewRepo[models.Sale](db),
	}
}

// SaleFilter 销售单列表的可选过滤条件，全部条件取 AND
// Price/Amount 用符号编码比较方向：正数表示 >=，负数表示 <= 绝对值
// 恰好为 0 视作未设置该过滤条件
type SaleFilter struct {
	CityID    *uuid.UUID
	StoreID   *uuid.UUID
	ProductID *uuid.UUID
	Days      int
	Price     float64
	Amount    int
}

// FindByFilter 组合过滤后的分页查询，过滤在前分页在后
func (s *Sale) FindByFilter(ctx context.Context, f *SaleFilter, limit, offset int) ([]*models.Sale, error) {
	db := s.Db.WithContext(ctx).Model(&models.Sale{})

	if f.CityID != nil {
		db = db.Where("sales.city_id = ?", *f.CityID)
	}

	if f.StoreID != nil {
		db = db.Where("sales.store_id = ?", *f.StoreID)
	}

	// 商品过滤是成员判断：销售单至少关联一个指定商品
	if f.ProductID != nil {
		db = db.Joins("JOIN product ON product.sales_id = sales.id").
			Where("product.id = ?", *f.ProductID)
	}

	if f.Days != 0 {
		since := time.Now().UTC().AddDate(0, 0, -f.Days)
		db = db.Where("sales.sale_date >= ?", since)
	}

	if f.Price != 0 {
		if f.Price < 0 {
			db = db.Where("sales.price <= ?", -f.Price)
		} else {
			db = db.Where("sales.price >= ?", f.Price)
		}
	}

	if f.Amount != 0 {
		if f.Amount < 0 {
			db = db.Where("sales.amount <= ?", -f.Amount)
		} else {
			db = db.Where("sales.amount >= ?", f.Amount)
		}
	}

	var rows []*models.Sale
	if err := db.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
