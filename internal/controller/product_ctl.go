package controller

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/service"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProductReq 创建商品参数
type CreateProductReq struct {
	UserID            int64                  `json:"user_id" binding:"required"`
	BlueprintID       int64                  `json:"blueprint_id" binding:"required"`
	PrintProviderID   int64                  `json:"print_provider_id" binding:"required"`
	Title             string                 `json:"title" binding:"required"`
	Description       string                 `json:"description" binding:"required"`
	SafetyInformation string                 `json:"safety_information" binding:"required"`
	Payload           map[string]interface{} `json:"payload"`
}

// CreateProduct 创建本地商品草稿
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
		return
	}

	product := &model.Product{
		UserID:            req.UserID,
		BlueprintID:       req.BlueprintID,
		PrintProviderID:   req.PrintProviderID,
		Title:             req.Title,
		Description:       req.Description,
		SafetyInformation: req.SafetyInformation,
	}
	if req.Payload != nil {
		raw, err := json.Marshal(req.Payload)
		if err != nil {
			c.JSON(422, gin.H{"code": 422, "message": "payload 不是合法 JSON: " + err.Error()})
			return
		}
		product.Payload = datatypes.JSON(raw)
	}

	if err := ctrl.productService.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "保存失败: " + err.Error()})
		return
	}

	c.JSON(201, product)
}

// ListProducts 获取指定用户的全部商品
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	userIDStr := c.Query("user_id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 user_id"})
		return
	}

	products, err := ctrl.productService.ListUserProducts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(200, products)
}

// GetProduct 获取单个商品
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	product, err := ctrl.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(200, product)
}
