package controller

import (
	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/service"
)

type NicheController struct {
	nicheService *service.NicheService
}

func NewNicheController(nicheService *service.NicheService) *NicheController {
	return &NicheController{nicheService: nicheService}
}

// ListNiches 获取全部细分市场
func (ctrl *NicheController) ListNiches(c *gin.Context) {
	niches, err := ctrl.nicheService.ListNiches(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}
	c.JSON(200, niches)
}

// SuggestReq 建议请求参数
type SuggestReq struct {
	ProductType string `json:"product_type"`
}

// SuggestNiches 调用模型生成细分市场建议
func (ctrl *NicheController) SuggestNiches(c *gin.Context) {
	var req SuggestReq
	// 请求体可以整体省略，等价于空参数
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
			return
		}
	}

	suggestions, err := ctrl.nicheService.SuggestNiches(c.Request.Context(), req.ProductType)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"suggestions": suggestions})
}

// ChooseNicheReq 选定请求参数
type ChooseNicheReq struct {
	Name     string `json:"name" binding:"required"`
	ParentID *int64 `json:"parent_id"`
	UserID   *int64 `json:"user_id"`
}

// ChooseNiche 持久化用户选定的细分市场
func (ctrl *NicheController) ChooseNiche(c *gin.Context) {
	var req ChooseNicheReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
		return
	}

	niche, err := ctrl.nicheService.ChooseNiche(c.Request.Context(), req.Name, req.ParentID, req.UserID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "保存失败: " + err.Error()})
		return
	}

	c.JSON(201, niche)
}
