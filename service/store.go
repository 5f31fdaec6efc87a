package service

import (
	"Retail/dao"
	"Retail/models"
	"Retail/pkg/response"
	"Retail/types"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreService struct {
	DB       *gorm.DB
	StoreDAO *dao.Store
	CityDAO  *dao.City
}

var _ IStoreService = (*StoreService)(nil)

type IStoreService interface {
	CreateStore(ctx context.Context, req *types.CreateStoreRequest) (*models.Store, error)
	GetStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error)
	ListStores(ctx context.Context, page *types.PageQuery) (*types.Page[*models.Store], error)
	UpdateStore(ctx context.Context, req *types.UpdateStoreRequest) (*models.Store, error)
	DeleteStore(ctx context.Context, storeID uuid.UUID) error
}

func (s *StoreService) CreateStore(ctx context.Context, req *types.CreateStoreRequest) (*models.Store, error) {
	// 引用校验：城市必须已存在，不存在直接 400，不落库
	if !s.CityDAO.IsCityExist(ctx, req.CityID) {
		return nil, response.BadRequest("Wrong ID.")
	}

	store := &models.Store{Name: req.Name, CityID: req.CityID}
	if err := s.StoreDAO.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) GetStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error) {
	store, err := s.StoreDAO.FindOne(ctx, []string{"City", "Products"}, "id = ?", storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Data with such ID not found.")
		}
		return nil, err
	}
	return store, nil
}

func (s *StoreService) ListStores(ctx context.Context, page *types.PageQuery) (*types.Page[*models.Store], error) {
	rows, err := s.StoreDAO.FindPage(ctx, page.Size, page.Offset(), "")
	if err != nil {
		return nil, err
	}
	return types.NewPage(page.Page, page.Size, rows), nil
}

func (s *StoreService) UpdateStore(ctx context.Context, req *types.UpdateStoreRequest) (*models.Store, error) {
	if !s.CityDAO.IsCityExist(ctx, req.CityID) {
		return nil, response.BadRequest("Wrong ID.")
	}

	data := map[string]any{"name": req.Name, "city_id": req.CityID}
	store, err := s.StoreDAO.UpdateByWhere(ctx, data, "id = ?", req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Can't update data with this ID.")
		}
		return nil, err
	}
	return store, nil
}

func (s *StoreService) DeleteStore(ctx context.Context, storeID uuid.UUID) error {
	err := s.StoreDAO.DeleteByWhere(ctx, "id = ?", storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Can't delete data with this ID.")
		}
		return err
	}
	return nil
}
