package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ==================== 配置 ====================

type PrintifyConfig struct {
	APIKey  string
	BaseURL string // 默认 https://api.printify.com
	Timeout time.Duration
}

// ==================== 数据结构 ====================

// PrintifyShop 店铺（只取前端关心的两个字段）
type PrintifyShop struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ==================== 服务实现 ====================

// PrintifyService Printify 开放接口适配器
// 无状态，全部调用透传，不重试
type PrintifyService struct {
	Config *PrintifyConfig
	client *resty.Client
}

// NewPrintifyService 创建 Printify 适配器
func NewPrintifyService(cfg *PrintifyConfig) *PrintifyService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.printify.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "POD-Go-App/1.0").
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &PrintifyService{
		Config: cfg,
		client: client,
	}
}

// ==================== 店铺 ====================

// GetShops 拉取账号下的店铺列表
// 兼容三种返回结构：裸数组、{data: [...]}、{shops: [...]}
func (s *PrintifyService) GetShops(ctx context.Context) ([]PrintifyShop, error) {
	if s.Config.APIKey == "" {
		return nil, ErrPrintifyKeyMissing
	}

	resp, err := s.client.R().SetContext(ctx).Get("/v1/shops.json")
	if err != nil {
		return nil, s.wrapTransportError(err)
	}
	if resp.StatusCode() != 200 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return normalizeShops(resp.Body())
}

// normalizeShops 归一化店铺列表结构
func normalizeShops(body []byte) ([]PrintifyShop, error) {
	var shops []PrintifyShop
	if err := json.Unmarshal(body, &shops); err == nil {
		return shops, nil
	}

	var wrapper struct {
		Data  []PrintifyShop `json:"data"`
		Shops []PrintifyShop `json:"shops"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("无法识别的店铺列表结构: %v", err)
	}
	if wrapper.Data != nil {
		return wrapper.Data, nil
	}
	if wrapper.Shops != nil {
		return wrapper.Shops, nil
	}
	return nil, errors.New("无法识别的店铺列表结构")
}

// ==================== 目录 ====================

// GetCatalog 拉取商品蓝图目录
// 任何失败都打日志并返回空列表，不向调用方抛错
func (s *PrintifyService) GetCatalog(ctx context.Context) []json.RawMessage {
	resp, err := s.client.R().SetContext(ctx).Get("/v1/catalog/blueprints.json")
	if err != nil {
		log.Printf("[Printify] 拉取目录失败: %v", err)
		return []json.RawMessage{}
	}
	if resp.StatusCode() != 200 {
		log.Printf("[Printify] 拉取目录失败 [%d]: %s", resp.StatusCode(), resp.String())
		return []json.RawMessage{}
	}

	var blueprints []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &blueprints); err != nil {
		log.Printf("[Printify] 解析目录失败: %v", err)
		return []json.RawMessage{}
	}
	return blueprints
}

// GetBlueprintVariants 拉取指定蓝图在指定供应商下的变体列表
func (s *PrintifyService) GetBlueprintVariants(ctx context.Context, blueprintID, printProviderID int64) (json.RawMessage, error) {
	if s.Config.APIKey == "" {
		return nil, ErrPrintifyKeyMissing
	}

	url := fmt.Sprintf("/v1/catalog/blueprints/%d/print_providers/%d/variants.json", blueprintID, printProviderID)
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, s.wrapTransportError(err)
	}
	if resp.StatusCode() != 200 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.Body(), nil
}

// ==================== 图片上传 ====================

// UploadImage 把远程图片 URL 登记到 Printify 素材库
// fileName 为空时生成随机文件名
func (s *PrintifyService) UploadImage(ctx context.Context, imageURL, fileName string) (json.RawMessage, error) {
	if s.Config.APIKey == "" {
		return nil, ErrPrintifyKeyMissing
	}

	if fileName == "" {
		fileName = uuid.NewString() + ".png"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"file_name": fileName,
			"url":       imageURL,
		}).
		Post("/v1/uploads/images.json")
	if err != nil {
		return nil, s.wrapTransportError(err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.Body(), nil
}

// ==================== 商品创建 ====================

// CreateProduct 在指定店铺下创建商品
// body 由调用方组装完毕，此处只负责透传；200/201 之外一律按网关错误上抛
func (s *PrintifyService) CreateProduct(ctx context.Context, shopID int64, body map[string]interface{}) (json.RawMessage, error) {
	if s.Config.APIKey == "" {
		return nil, ErrPrintifyKeyMissing
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/v1/shops/%d/products.json", shopID))
	if err != nil {
		return nil, s.wrapTransportError(err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.Body(), nil
}

// wrapTransportError 把传输层错误翻译成本地错误分类
func (s *PrintifyService) wrapTransportError(err error) error {
	if isTimeout(err) {
		return &TimeoutError{Provider: "Printify", Err: err}
	}
	return fmt.Errorf("请求 Printify 失败: %w", err)
}
