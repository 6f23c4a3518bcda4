package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/service"
)

type DesignController struct {
	designService *service.DesignService
}

func NewDesignController(designService *service.DesignService) *DesignController {
	return &DesignController{designService: designService}
}

// GenerateDesign 为商品创建设计稿并生成文案
func (ctrl *DesignController) GenerateDesign(c *gin.Context) {
	var req service.GenerateDesignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
		return
	}

	design, err := ctrl.designService.GenerateDesign(c.Request.Context(), &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(201, design)
}

// ListDesigns 获取商品下的全部设计稿
func (ctrl *DesignController) ListDesigns(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 product_id"})
		return
	}

	designs, err := ctrl.designService.ListDesigns(c.Request.Context(), productID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(200, designs)
}
