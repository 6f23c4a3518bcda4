package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestPrintify 指向本地假服务器的适配器
func newTestPrintify(serverURL string) *PrintifyService {
	return NewPrintifyService(&PrintifyConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
	})
}

// ==================== 店铺列表 ====================

func TestGetShops_NormalizesThreeShapes(t *testing.T) {
	bodies := []string{
		`[{"id": 1, "title": "Shop A"}, {"id": 2, "title": "Shop B"}]`,
		`{"data": [{"id": 1, "title": "Shop A"}, {"id": 2, "title": "Shop B"}]}`,
		`{"shops": [{"id": 1, "title": "Shop A"}, {"id": 2, "title": "Shop B"}]}`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/shops.json" {
				t.Errorf("path = %s, want /v1/shops.json", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))

		svc := newTestPrintify(server.URL)
		shops, err := svc.GetShops(context.Background())
		server.Close()

		assert.NoError(t, err, "body: %s", body)
		assert.Len(t, shops, 2, "body: %s", body)
		assert.Equal(t, int64(1), shops[0].ID)
		assert.Equal(t, "Shop A", shops[0].Title)
	}
}

func TestGetShops_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error": "Unauthenticated"}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	_, err := svc.GetShops(context.Background())

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("err = %v, want *GatewayError", err)
	}
	assert.Equal(t, 401, gatewayErr.StatusCode)
	assert.Contains(t, gatewayErr.Body, "Unauthenticated")
}

func TestGetShops_MissingKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewPrintifyService(&PrintifyConfig{BaseURL: server.URL})
	_, err := svc.GetShops(context.Background())

	assert.ErrorIs(t, err, ErrPrintifyKeyMissing)
	assert.False(t, called, "凭证缺失时不应发出请求")
}

// ==================== 目录 ====================

func TestGetCatalog_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 5, "title": "Unisex Tee"}, {"id": 6, "title": "Mug 11oz"}]`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	blueprints := svc.GetCatalog(context.Background())
	assert.Len(t, blueprints, 2)
}

func TestGetCatalog_SwallowsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	blueprints := svc.GetCatalog(context.Background())

	// 目录接口失败时静默降级为空列表
	assert.NotNil(t, blueprints)
	assert.Len(t, blueprints, 0)
}

func TestGetCatalog_SwallowsTransportError(t *testing.T) {
	svc := newTestPrintify("http://127.0.0.1:1")
	blueprints := svc.GetCatalog(context.Background())
	assert.NotNil(t, blueprints)
	assert.Len(t, blueprints, 0)
}

func TestGetBlueprintVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/catalog/blueprints/5/print_providers/3/variants.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"variants": [{"id": 17887}]}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	raw, err := svc.GetBlueprintVariants(context.Background(), 5, 3)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "17887")
}

// ==================== 图片上传 ====================

func TestUploadImage_RelaysBody(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"id": "img_1", "file_name": "cat.png"}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	raw, err := svc.UploadImage(context.Background(), "https://cdn.example.com/cat.png", "cat.png")
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "img_1")
	assert.Equal(t, "cat.png", received["file_name"])
	assert.Equal(t, "https://cdn.example.com/cat.png", received["url"])
}

func TestUploadImage_GeneratesFileName(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	_, err := svc.UploadImage(context.Background(), "https://cdn.example.com/a.png", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, received["file_name"], "空 file_name 应自动生成")
}

func TestUploadImage_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"error": "invalid url"}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	_, err := svc.UploadImage(context.Background(), "not-a-url", "a.png")

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("err = %v, want *GatewayError", err)
	}
	assert.Equal(t, 400, gatewayErr.StatusCode)
}

// ==================== 商品创建 ====================

func TestCreateProduct_AuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(201)
		w.Write([]byte(`{"id": "remote_1"}`))
	}))
	defer server.Close()

	svc := newTestPrintify(server.URL)
	raw, err := svc.CreateProduct(context.Background(), 99, map[string]interface{}{"title": "t"})
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "remote_1")
}

func TestCreateProduct_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	svc := NewPrintifyService(&PrintifyConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})
	_, err := svc.CreateProduct(context.Background(), 1, map[string]interface{}{})

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("err = %v, want *TimeoutError", err)
	}
}
