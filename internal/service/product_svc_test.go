package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Design{}, &model.Metadata{})
	return db
}

func newProductServiceForTest(t *testing.T, printifyURL string) (*ProductService, *gorm.DB) {
	db := setupProductTestDB(t)
	printify := NewPrintifyService(&PrintifyConfig{
		APIKey:  "test-key",
		BaseURL: printifyURL,
	})
	return NewProductService(repository.NewProductRepository(db), printify), db
}

// ==================== 本地 CRUD ====================

func TestCreateProduct_DefaultsToDraft(t *testing.T) {
	svc, _ := newProductServiceForTest(t, "http://unused")

	product := &model.Product{
		UserID:            1,
		BlueprintID:       5,
		PrintProviderID:   3,
		Title:             "Cat Mug",
		Description:       "A mug with a cat",
		SafetyInformation: "Dishwasher safe",
	}
	if err := svc.CreateProduct(context.Background(), product); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	if product.ID == 0 {
		t.Error("创建后应分配 id")
	}
	if product.Status != model.ProductStatusDraft {
		t.Errorf("status = %s, want draft", product.Status)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _ := newProductServiceForTest(t, "http://unused")

	_, err := svc.GetProduct(context.Background(), 4242)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListUserProducts_FiltersByUser(t *testing.T) {
	svc, db := newProductServiceForTest(t, "http://unused")

	db.Create(&model.Product{UserID: 1, BlueprintID: 5, PrintProviderID: 3, Title: "A"})
	db.Create(&model.Product{UserID: 1, BlueprintID: 5, PrintProviderID: 3, Title: "B"})
	db.Create(&model.Product{UserID: 2, BlueprintID: 5, PrintProviderID: 3, Title: "C"})

	products, err := svc.ListUserProducts(context.Background(), 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	for _, p := range products {
		if p.UserID != 1 {
			t.Errorf("user_id = %d, want 1", p.UserID)
		}
	}
}

// ==================== 发布 ====================

func TestPublishProduct_NotFoundSkipsOutboundCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	svc, _ := newProductServiceForTest(t, server.URL)

	_, err := svc.PublishProduct(context.Background(), 999, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if calls != 0 {
		t.Errorf("本地商品不存在时不应请求上游, calls = %d", calls)
	}
}

func TestPublishProduct_PayloadWinsOnCollision(t *testing.T) {
	var submitted map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &submitted)
		w.WriteHeader(201)
		w.Write([]byte(`{"id": "remote_1"}`))
	}))
	defer server.Close()

	svc, db := newProductServiceForTest(t, server.URL)

	payload := map[string]interface{}{
		"title":       "Payload Title",
		"variants":    []map[string]interface{}{{"id": 17887, "price": 1999}},
		"print_areas": []map[string]interface{}{{"variant_ids": []int{17887}}},
	}
	raw, _ := json.Marshal(payload)
	db.Create(&model.Product{
		UserID:            1,
		BlueprintID:       5,
		PrintProviderID:   3,
		Title:             "Stored Title",
		Description:       "Desc",
		SafetyInformation: "Safe",
		Payload:           datatypes.JSON(raw),
	})

	var product model.Product
	db.First(&product)

	resp, err := svc.PublishProduct(context.Background(), product.ID, 99)
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}

	// payload 同名键覆盖基础字段
	if submitted["title"] != "Payload Title" {
		t.Errorf("title = %v, payload 应覆盖存储字段", submitted["title"])
	}
	// 基础字段照常带上
	if submitted["description"] != "Desc" {
		t.Errorf("description = %v, want Desc", submitted["description"])
	}
	if submitted["safety_information"] != "Safe" {
		t.Errorf("safety_information = %v, want Safe", submitted["safety_information"])
	}
	if int(submitted["blueprint_id"].(float64)) != 5 {
		t.Errorf("blueprint_id = %v, want 5", submitted["blueprint_id"])
	}
	if int(submitted["print_provider_id"].(float64)) != 3 {
		t.Errorf("print_provider_id = %v, want 3", submitted["print_provider_id"])
	}
	// payload 独有内容透传
	if _, ok := submitted["variants"]; !ok {
		t.Error("variants 应出现在提交体中")
	}
	// 上游响应原样返回
	if string(resp) != `{"id": "remote_1"}` {
		t.Errorf("resp = %s", string(resp))
	}
}

func TestPublishProduct_NoLocalStatusUpdateOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte(`{"id": "remote_1", "status": "unpublished"}`))
	}))
	defer server.Close()

	svc, db := newProductServiceForTest(t, server.URL)
	db.Create(&model.Product{UserID: 1, BlueprintID: 5, PrintProviderID: 3, Title: "T", Status: "draft"})

	var product model.Product
	db.First(&product)

	if _, err := svc.PublishProduct(context.Background(), product.ID, 99); err != nil {
		t.Fatalf("发布失败: %v", err)
	}

	var after model.Product
	db.First(&after, product.ID)
	if after.Status != "draft" {
		t.Errorf("发布成功不回写状态, status = %s", after.Status)
	}
}

func TestPublishProduct_UpstreamErrorRelayed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		w.Write([]byte(`{"error": "blueprint not found"}`))
	}))
	defer server.Close()

	svc, db := newProductServiceForTest(t, server.URL)
	db.Create(&model.Product{UserID: 1, BlueprintID: 99999, PrintProviderID: 3, Title: "T"})

	var product model.Product
	db.First(&product)

	_, err := svc.PublishProduct(context.Background(), product.ID, 99)

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("err = %v, want *GatewayError", err)
	}
	if gatewayErr.StatusCode != 422 {
		t.Errorf("status = %d, want 422", gatewayErr.StatusCode)
	}
}
