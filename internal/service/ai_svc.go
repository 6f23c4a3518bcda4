package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ==================== 配置 ====================

// AIConfig AI 服务配置
type AIConfig struct {
	ApiKey string
	Model  string
}

// ==================== 服务 ====================

type AIService struct {
	Config *AIConfig
	client *openai.Client
}

// NewAIService 创建 AI 服务
func NewAIService(cfg *AIConfig) *AIService {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4
	}

	svc := &AIService{Config: cfg}
	if cfg.ApiKey != "" {
		svc.client = openai.NewClient(cfg.ApiKey)
	}
	return svc
}

// ==================== 细分市场建议 ====================

// SuggestNiches 让模型给出 5 个细分市场建议
// productType 为空时返回通用建议
func (s *AIService) SuggestNiches(ctx context.Context, productType string) ([]string, error) {
	if s.Config.ApiKey == "" {
		return nil, ErrOpenAIKeyMissing
	}

	prompt := "Suggest 5 niche or sub-niche ideas"
	if productType != "" {
		prompt += " for: " + productType
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You're an expert at generating print-on-demand niches."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   150,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, s.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("模型未返回内容")
	}

	return ParseSuggestions(resp.Choices[0].Message.Content), nil
}

// ParseSuggestions 把模型输出拆成建议列表
// 按行切分，丢弃空行，去掉行首的短横列表标记；数字编号原样保留
func ParseSuggestions(text string) []string {
	suggestions := make([]string, 0)
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
			if line == "" {
				continue
			}
		}
		suggestions = append(suggestions, line)
	}
	return suggestions
}

// ==================== 文案生成 ====================

// ListingMetadata 设计文案生成结果
type ListingMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// GenerateListingMetadata 根据商品标题和设计类型生成上架文案
func (s *AIService) GenerateListingMetadata(ctx context.Context, productTitle, designType string) (*ListingMetadata, error) {
	if s.Config.ApiKey == "" {
		return nil, ErrOpenAIKeyMissing
	}

	prompt := fmt.Sprintf(`Generate optimized print-on-demand listing content for:

Product: %s
Design Type: %s

Requirements:
1. Title: SEO optimized, max 140 characters
2. Description: Engaging sales copy, 100-300 words
3. Tags: 13 relevant marketplace tags

Output Format (JSON only, no markdown):
{"title": "...", "description": "...", "tags": ["tag1", "tag2"]}`, productTitle, designType)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.8,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, s.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("模型未返回内容")
	}

	var meta ListingMetadata
	raw := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("解析生成结果失败: %v, raw: %s", err, raw)
	}
	return &meta, nil
}

// wrapError 把 OpenAI 客户端错误翻译成本地错误分类
func (s *AIService) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &GatewayError{
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		}
	}
	if isTimeout(err) {
		return &TimeoutError{Provider: "OpenAI", Err: err}
	}
	return fmt.Errorf("请求 OpenAI 失败: %w", err)
}
