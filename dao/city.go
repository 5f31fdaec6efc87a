package dao

import (
	"Retail/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type City struct {
	Repo[models.City]
}

func NewCity(db *gorm.DB) *City {
	return &City{
		Repo: NewRepo[models.City](db),
	}
}

// IsCityExist 引用校验用：判断城市ID是否存在
func (c *City) IsCityExist(ctx context.Context, cityID uuid.UUID) bool {
	exist, _ := c.Repo.IsExist(ctx, "id = ?", cityID)
	return exist
}
