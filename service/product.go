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

type ProductService struct {
	DB         *gorm.DB
	ProductDAO *dao.Product
	StoreDAO   *dao.Store
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, page *types.PageQuery) (*types.Page[*models.Product], error)
	UpdateProduct(ctx context.Context, req *types.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

func (p *ProductService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error) {
	// 引用校验：门店必须已存在
	if !p.StoreDAO.IsStoreExist(ctx, req.StoreID) {
		return nil, response.BadRequest("Wrong ID.")
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		StoreID:     req.StoreID,
	}
	if err := p.ProductDAO.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := p.ProductDAO.FindOne(ctx, []string{"Store"}, "id = ?", productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Data with such ID not found.")
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) ListProducts(ctx context.Context, page *types.PageQuery) (*types.Page[*models.Product], error) {
	rows, err := p.ProductDAO.FindPage(ctx, page.Size, page.Offset(), "")
	if err != nil {
		return nil, err
	}
	return types.NewPage(page.Page, page.Size, rows), nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, req *types.UpdateProductRequest) (*models.Product, error) {
	if !p.StoreDAO.IsStoreExist(ctx, req.StoreID) {
		return nil, response.BadRequest("Wrong ID.")
	}

	data := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"price":       decimal.NewFromFloat(req.Price),
		"store_id":    req.StoreID,
	}
	product, err := p.ProductDAO.UpdateByWhere(ctx, data, "id = ?", req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Can't update data with this ID.")
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	err := p.ProductDAO.DeleteByWhere(ctx, "id = ?", productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Can't delete data with this ID.")
		}
		return err
	}
	return nil
}
