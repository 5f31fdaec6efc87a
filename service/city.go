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

type CityService struct {
	DB      *gorm.DB
	CityDAO *dao.City
}

var _ ICityService = (*CityService)(nil)

type ICityService interface {
	CreateCity(ctx context.Context, req *types.CreateCityRequest) (*models.City, error)
	GetCity(ctx context.Context, cityID uuid.UUID) (*models.City, error)
	ListCities(ctx context.Context, page *types.PageQuery) (*types.Page[*models.City], error)
	UpdateCity(ctx context.Context, req *types.UpdateCityRequest) (*models.City, error)
	DeleteCity(ctx context.Context, cityID uuid.UUID) error
}

func (s *CityService) CreateCity(ctx context.Context, req *types.CreateCityRequest) (*models.City, error) {
	city := &models.City{Name: req.Name}
	if err := s.CityDAO.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) GetCity(ctx context.Context, cityID uuid.UUID) (*models.City, error) {
	city, err := s.CityDAO.FindOne(ctx, []string{"Stores"}, "id = ?", cityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Data with such ID not found.")
		}
		return nil, err
	}
	return city, nil
}

func (s *CityService) ListCities(ctx context.Context, page *types.PageQuery) (*types.Page[*models.City], error) {
	rows, err := s.CityDAO.FindPage(ctx, page.Size, page.Offset(), "")
	if err != nil {
		return nil, err
	}
	return types.NewPage(page.Page, page.Size, rows), nil
}

func (s *CityService) UpdateCity(ctx context.Context, req *types.UpdateCityRequest) (*models.City, error) {
	data := map[string]any{"name": req.Name}
	city, err := s.CityDAO.UpdateByWhere(ctx, data, "id = ?", req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Can't update data with this ID.")
		}
		return nil, err
	}
	return city, nil
}

func (s *CityService) DeleteCity(ctx context.Context, cityID uuid.UUID) error {
	err := s.CityDAO.DeleteByWhere(ctx, "id = ?", cityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Can't delete data with this ID.")
		}
		return err
	}
	return nil
}
