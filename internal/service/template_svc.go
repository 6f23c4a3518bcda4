package service

import (
	"context"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
)

// TemplateService 选品模板服务
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService 创建模板服务
func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// ListTemplates 全量读取，按存储顺序返回
func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return s.templateRepo.List(ctx)
}

// CreateTemplate 落库并返回带 id 的记录
func (s *TemplateService) CreateTemplate(ctx context.Context, tpl *model.Template) error {
	return s.templateRepo.Create(ctx, tpl)
}
