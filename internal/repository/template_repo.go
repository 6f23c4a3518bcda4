package repository

import (
	"context"

	"gorm.io/gorm"

	"pod_dev_v1_202608/internal/model"
)

// TemplateRepository 选品模板仓储接口
type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template) error
	List(ctx context.Context) ([]model.Template, error)
}

type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepository 创建模板仓储
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.Template) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *templateRepo) List(ctx context.Context) ([]model.Template, error) {
	var templates []model.Template
	err := r.db.WithContext(ctx).Find(&templates).Error
	return templates, err
}
