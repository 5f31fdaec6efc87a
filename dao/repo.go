package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用单表 CRUD 网关，各实体 DAO 内嵌使用
// 所有操作都带 context，传入事务内的 *gorm.DB 即可参与调用方的事务
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindOne 按条件查询单行，可按需预加载关联
// 未命中时透传 gorm.ErrRecordNotFound，由 service 层转成 404
func (r Repo[T]) FindOne(ctx context.Context, preloads []string, query string, args ...any) (*T, error) {
	db := r.Db.WithContext(ctx)
	for _, preload := range preloads {
		db = db.Preload(preload)
	}

	var row T
	if err := db.Where(query, args...).First(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

// FindPage 精确匹配条件下的分页查询，排序依赖存储默认顺序
func (r Repo[T]) FindPage(ctx context.Context, limit, offset int, query string, args ...any) ([]*T, error) {
	db := r.Db.WithContext(ctx)
	if query != "" {
		db = db.Where(query, args...)
	}

	var rows []*T
	if err := db.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r Repo[T]) Create(ctx context.Context, row *T) error {
	return r.Db.WithContext(ctx).Create(row).Error
}

// UpdateByWhere 先更新再回查，回查未命中说明没有匹配行
func (r Repo[T]) UpdateByWhere(ctx context.Context, data map[string]any, query string, args ...any) (*T, error) {
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Where(query, args...).
		Updates(data).Error
	if err != nil {
		return nil, err
	}

	return r.FindOne(ctx, nil, query, args...)
}

// DeleteByWhere 先查再删，避免对不存在的行静默成功
func (r Repo[T]) DeleteByWhere(ctx context.Context, query string, args ...any) error {
	if _, err := r.FindOne(ctx, nil, query, args...); err != nil {
		return err
	}

	return r.Db.WithContext(ctx).Where(query, args...).Delete(new(T)).Error
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Where(query, args...).
		Count(&count).Error

	return count > 0, err
}

func (r Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
