package dao

import (
	"Retail/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	Repo[models.Store]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Repo: NewRepo[models.Store](db),
	}
}

// IsStoreExist 引用校验用：判断门店ID是否存在
func (s *Store) IsStoreExist(ctx context.Context, storeID uuid.UUID) bool {
	exist, _ := s.Repo.IsExist(ctx, "id = ?", storeID)
	return exist
}
