package repository

import (
	"context"

	"gorm.io/gorm"

	"pod_dev_v1_202608/internal/model"
)

// NicheRepository 细分市场仓储接口
// 只有插入和全量读取，niche 一经写入不再变更
type NicheRepository interface {
	Create(ctx context.Context, niche *model.Niche) error
	List(ctx context.Context) ([]model.Niche, error)
	Count(ctx context.Context) (int64, error)
}

type nicheRepo struct {
	db *gorm.DB
}

// NewNicheRepository 创建细分市场仓储
func NewNicheRepository(db *gorm.DB) NicheRepository {
	return &nicheRepo{db: db}
}

func (r *nicheRepo) Create(ctx context.Context, niche *model.Niche) error {
	return r.db.WithContext(ctx).Create(niche).Error
}

func (r *nicheRepo) List(ctx context.Context) ([]model.Niche, error) {
	var niches []model.Niche
	err := r.db.WithContext(ctx).Find(&niches).Error
	return niches, err
}

func (r *nicheRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Niche{}).Count(&total).Error
	return total, err
}
