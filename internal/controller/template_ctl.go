package controller

import (
	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/service"
)

type TemplateController struct {
	templateService *service.TemplateService
}

func NewTemplateController(templateService *service.TemplateService) *TemplateController {
	return &TemplateController{templateService: templateService}
}

// ListTemplates 获取全部选品模板
func (ctrl *TemplateController) ListTemplates(c *gin.Context) {
	templates, err := ctrl.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}
	c.JSON(200, templates)
}

// CreateTemplateReq 创建模板参数
type CreateTemplateReq struct {
	Name     string           `json:"name" binding:"required"`
	UserID   int64            `json:"user_id" binding:"required"`
	Products model.Int64Slice `json:"products"`
	Variants model.JSONMap    `json:"variants"`
}

// CreateTemplate 持久化选品模板
func (ctrl *TemplateController) CreateTemplate(c *gin.Context) {
	var req CreateTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, gin.H{"code": 422, "message": "参数错误: " + err.Error()})
		return
	}

	tpl := &model.Template{
		Name:     req.Name,
		UserID:   req.UserID,
		Products: req.Products,
		Variants: req.Variants,
	}
	if err := ctrl.templateService.CreateTemplate(c.Request.Context(), tpl); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "保存失败: " + err.Error()})
		return
	}

	c.JSON(201, tpl)
}
