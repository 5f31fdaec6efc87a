package service

import (
	"Retail/dao"
	"Retail/models"
	"Retail/pkg/response"
	"Retail/types"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService 销售单协调器
// 销售单和商品的双向关联只允许从这里修改：每次关联集合变化时
// 重算 amount/price 并和商品的 sales_id 一起在同一个事务里落库
type SaleService struct {
	DB         *gorm.DB
	SaleDAO    *dao.Sale
	ProductDAO *dao.Product
}

var _ ISaleService = (*SaleService)(nil)

type ISaleService interface {
	CreateSale(ctx context.Context, req *types.CreateSaleRequest) (*models.Sale, error)
	GetSale(ctx context.Context, saleID uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context, page *types.PageQuery, filter *dao.SaleFilter) (*types.Page[*models.Sale], error)
	UpdateSale(ctx context.Context, req *types.UpdateSaleRequest) (*models.Sale, error)
	DeleteSale(ctx context.Context, saleID uuid.UUID) error
}

func (s *SaleService) CreateSale(ctx context.Context, req *types.CreateSaleRequest) (*models.Sale, error) {
	if len(req.Products) == 0 {
		return nil, response.BadRequest("Products cannot be empty.")
	}

	sale := &models.Sale{
		StoreID: req.StoreID,
		CityID:  req.CityID,
		Price:   decimal.Zero,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 先解析全部商品ID，任意一个不存在则整体失败，不留半截状态
		products, err := s.resolveProducts(tx, req.Products)
		if err != nil {
			return err
		}

		// 2. 销售单落库后再挂商品并回写合计
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return s.changeProductSale(tx, sale, products, true)
	})
	if err != nil {
		return nil, err
	}

	return s.SaleDAO.FindOne(ctx, []string{"Products"}, "id = ?", sale.ID)
}

func (s *SaleService) GetSale(ctx context.Context, saleID uuid.UUID) (*models.Sale, error) {
	sale, err := s.SaleDAO.FindOne(ctx, []string{"Products"}, "id = ?", saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Sale with such ID not found.")
		}
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) ListSales(ctx context.Context, page *types.PageQuery, filter *dao.SaleFilter) (*types.Page[*models.Sale], error) {
	rows, err := s.SaleDAO.FindByFilter(ctx, filter, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return types.NewPage(page.Page, page.Size, rows), nil
}

func (s *SaleService) UpdateSale(ctx context.Context, req *types.UpdateSaleRequest) (*models.Sale, error) {
	if len(req.Products) == 0 {
		return nil, response.BadRequest("Products cannot be empty.")
	}

	sale, err := s.SaleDAO.FindOne(ctx, nil, "id = ?", req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Can't update a sale with this ID.")
		}
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products, err := s.resolveProducts(tx, req.Products)
		if err != nil {
			return err
		}

		// 不对旧关联集合做差集：上次关联、这次没再提交的商品会保留旧的 sales_id
		if err := s.changeProductSale(tx, sale, products, true); err != nil {
			return err
		}

		data := map[string]any{
			"store_id": req.StoreID,
			"city_id":  req.CityID,
		}
		return tx.Model(&models.Sale{}).Where("id = ?", sale.ID).Updates(data).Error
	})
	if err != nil {
		return nil, err
	}

	return s.SaleDAO.FindOne(ctx, nil, "id = ?", sale.ID)
}

func (s *SaleService) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.SaleDAO.FindOne(ctx, []string{"Products"}, "id = ?", saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Can't delete a sale with this ID.")
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先解绑所有关联商品再删行，解绑不重算合计
		products := make([]*models.Product, 0, len(sale.Products))
		for i := range sale.Products {
			products = append(products, &sale.Products[i])
		}
		if err := s.changeProductSale(tx, sale, products, false); err != nil {
			return err
		}
		return tx.Where("id = ?", sale.ID).Delete(&models.Sale{}).Error
	})
}

// resolveProducts 把商品ID列表解析成商品行，任意一个未命中即失败
func (s *SaleService) resolveProducts(tx *gorm.DB, productIDs []uuid.UUID) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(productIDs))
	for _, productID := range productIDs {
		var product models.Product
		if err := tx.Where("id = ?", productID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.BadRequest("Wrong Product ID.")
			}
			return nil, err
		}
		products = append(products, &product)
	}
	return products, nil
}

// changeProductSale 挂接或解绑商品集合
// attach 模式重新指向 sales_id 并重算销售单合计；detach 模式只清 sales_id
func (s *SaleService) changeProductSale(tx *gorm.DB, sale *models.Sale, products []*models.Product, attach bool) error {
	if !attach {
		for _, product := range products {
			err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("sales_id", nil).Error
			if err != nil {
				return err
			}
		}
		return nil
	}

	price := decimal.Zero
	amount := 0
	for _, product := range products {
		price = price.Add(product.Price)
		amount++

		err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("sales_id", sale.ID).Error
		if err != nil {
			return err
		}
	}

	sale.Amount = amount
	sale.Price = price

	data := map[string]any{"amount": amount, "price": price}
	return tx.Model(&models.Sale{}).Where("id = ?", sale.ID).Updates(data).Error
}
