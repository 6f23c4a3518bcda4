package service

import (
	"context"
	"log"
	"strings"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
)

// DesignService 设计服务：为商品挂设计稿并生成上架文案
type DesignService struct {
	productRepo repository.ProductRepository
	ai          *AIService
}

// NewDesignService 创建设计服务
func NewDesignService(productRepo repository.ProductRepository, ai *AIService) *DesignService {
	return &DesignService{
		productRepo: productRepo,
		ai:          ai,
	}
}

// GenerateDesignReq 设计生成参数
type GenerateDesignReq struct {
	ProductID   int64  `json:"product_id" binding:"required"`
	DesignType  string `json:"design_type" binding:"required"`
	TextContent string `json:"text_content"`
	ImageURL    string `json:"image_url"`
}

// GenerateDesign 为商品创建设计稿
// 配置了模型凭证时顺带生成一条文案；文案生成失败只打日志，不影响设计稿落库
func (s *DesignService) GenerateDesign(ctx context.Context, req *GenerateDesignReq) (*model.Design, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}

	design := &model.Design{
		ProductID:   product.ID,
		DesignType:  req.DesignType,
		TextContent: req.TextContent,
		ImageURL:    req.ImageURL,
		Status:      model.DesignStatusPending,
	}
	if err := s.productRepo.CreateDesign(ctx, design); err != nil {
		return nil, err
	}

	if s.ai.Config.ApiKey != "" {
		meta, err := s.ai.GenerateListingMetadata(ctx, product.Title, req.DesignType)
		if err != nil {
			log.Printf("[Design] 文案生成失败 (design_id=%d): %v", design.ID, err)
			return design, nil
		}

		item := &model.Metadata{
			DesignID:    design.ID,
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        strings.Join(meta.Tags, ","),
		}
		if err := s.productRepo.CreateMetadata(ctx, item); err != nil {
			return nil, err
		}
		design.MetadataItems = append(design.MetadataItems, *item)
	}

	return design, nil
}

// ListDesigns 获取商品下的全部设计稿（含文案）
func (s *DesignService) ListDesigns(ctx context.Context, productID int64) ([]model.Design, error) {
	return s.productRepo.ListDesignsByProduct(ctx, productID)
}
