package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// ==================== 错误分类 ====================

var (
	// ErrOpenAIKeyMissing OpenAI 凭证未配置（对外表现为 500）
	ErrOpenAIKeyMissing = errors.New("OPENAI_API_KEY 未配置")

	// ErrPrintifyKeyMissing Printify 凭证未配置（对外表现为 500）
	ErrPrintifyKeyMissing = errors.New("PRINTIFY_API_KEY 未配置")

	// ErrNotFound 本地记录不存在（对外表现为 404）
	ErrNotFound = errors.New("记录不存在")
)

// GatewayError 上游返回了非成功状态码
// Body 保留上游原始响应体，原样透传给调用方便于排查
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("上游接口错误 [%d]: %s", e.StatusCode, e.Body)
}

// TimeoutError 上游在客户端超时时间内未响应（对外表现为 504）
type TimeoutError struct {
	Provider string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("请求 %s 超时: %v", e.Provider, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// isTimeout 判断传输层错误是否为超时
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
