package service

import (
	"context"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
)

// NicheService 细分市场服务
type NicheService struct {
	nicheRepo repository.NicheRepository
	ai        *AIService
}

// NewNicheService 创建细分市场服务
func NewNicheService(nicheRepo repository.NicheRepository, ai *AIService) *NicheService {
	return &NicheService{
		nicheRepo: nicheRepo,
		ai:        ai,
	}
}

// ListNiches 全量读取，按存储顺序返回
func (s *NicheService) ListNiches(ctx context.Context) ([]model.Niche, error) {
	return s.nicheRepo.List(ctx)
}

// SuggestNiches 调用模型生成建议列表
func (s *NicheService) SuggestNiches(ctx context.Context, productType string) ([]string, error) {
	return s.ai.SuggestNiches(ctx, productType)
}

// ChooseNiche 把用户选定的细分市场落库
func (s *NicheService) ChooseNiche(ctx context.Context, name string, parentID, userID *int64) (*model.Niche, error) {
	niche := &model.Niche{
		Name:     name,
		ParentID: parentID,
		UserID:   userID,
	}
	if err := s.nicheRepo.Create(ctx, niche); err != nil {
		return nil, err
	}
	return niche, nil
}
