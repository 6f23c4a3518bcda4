package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
)

// ProductService 商品服务：本地 CRUD + 发布到 Printify
type ProductService struct {
	productRepo repository.ProductRepository
	printify    *PrintifyService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, printify *PrintifyService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		printify:    printify,
	}
}

// CreateProduct 创建本地商品记录，状态默认 draft
func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Status == "" {
		product.Status = model.ProductStatusDraft
	}
	return s.productRepo.Create(ctx, product)
}

// GetProduct 按 id 获取商品
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListUserProducts 获取指定用户的全部商品，不分页
func (s *ProductService) ListUserProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	return s.productRepo.ListByUser(ctx, userID)
}

// PublishProduct 把本地商品发布到 Printify 指定店铺
// 提交体 = 五个必填字段打底，再把存储的 payload 覆盖上去（payload 同名键优先）
// 成功响应原样透传；本地状态不回写，重复提交会在远端产生重复商品
func (s *ProductService) PublishProduct(ctx context.Context, productID, shopID int64) (json.RawMessage, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"title":              product.Title,
		"description":        product.Description,
		"safety_information": product.SafetyInformation,
		"blueprint_id":       product.BlueprintID,
		"print_provider_id":  product.PrintProviderID,
	}

	if len(product.Payload) > 0 {
		var overlay map[string]interface{}
		if err := json.Unmarshal(product.Payload, &overlay); err != nil {
			return nil, fmt.Errorf("商品 payload 不是合法 JSON: %w", err)
		}
		for k, v := range overlay {
			body[k] = v
		}
	}

	return s.printify.CreateProduct(ctx, shopID, body)
}
