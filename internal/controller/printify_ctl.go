package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/service"
)

type PrintifyController struct {
	printifyService *service.PrintifyService
	productService  *service.ProductService
}

func NewPrintifyController(printifyService *service.PrintifyService, productService *service.ProductService) *PrintifyController {
	return &PrintifyController{
		printifyService: printifyService,
		productService:  productService,
	}
}

// GetShops 获取账号下的店铺列表
func (ctrl *PrintifyController) GetShops(c *gin.Context) {
	shops, err := ctrl.printifyService.GetShops(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(200, shops)
}

// GetCatalog 获取商品蓝图目录
// 适配器对失败静默降级，这里永远返回 200
func (ctrl *PrintifyController) GetCatalog(c *gin.Context) {
	blueprints := ctrl.printifyService.GetCatalog(c.Request.Context())
	c.JSON(200, gin.H{"products": blueprints})
}

// GetBlueprintVariants 获取蓝图在指定供应商下的变体列表
func (ctrl *PrintifyController) GetBlueprintVariants(c *gin.Context) {
	blueprintID, err := strconv.ParseInt(c.Param("blueprint_id"), 10, 64)
	if err != nil || blueprintID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 blueprint_id"})
		return
	}
	printProviderID, err := strconv.ParseInt(c.Query("print_provider_id"), 10, 64)
	if err != nil || printProviderID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 print_provider_id"})
		return
	}

	variants, err := ctrl.printifyService.GetBlueprintVariants(c.Request.Context(), blueprintID, printProviderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Data(200, "application/json", variants)
}

// UploadImageReq 图片上传参数
type UploadImageReq struct {
	URL      string `json:"url" binding:"required"`
	FileName string `json:"file_name"`
}

// UploadImage 把远程图片登记到 Printify 素材库
func (ctrl *PrintifyController) UploadImage(c *gin.Context) {
	var req UploadImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctrl.printifyService.UploadImage(c.Request.Context(), req.URL, req.FileName)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Data(200, "application/json", resp)
}

// CreateProduct 把本地商品发布到指定店铺
func (ctrl *PrintifyController) CreateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 product_id"})
		return
	}
	shopID, err := strconv.ParseInt(c.Query("shop_id"), 10, 64)
	if err != nil || shopID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 shop_id"})
		return
	}

	resp, err := ctrl.productService.PublishProduct(c.Request.Context(), productID, shopID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Data(200, "application/json", resp)
}
