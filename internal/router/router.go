package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/controller"
)

// Controllers 控制器集合
type Controllers struct {
	Niche    *controller.NicheController
	Product  *controller.ProductController
	Printify *controller.PrintifyController
	Template *controller.TemplateController
	Design   *controller.DesignController
	User     *controller.UserController
}

// SetupRouter 注册所有路由
// frontendOrigin 非空时跨域收紧到单一前端来源，否则全放开
func SetupRouter(ctls *Controllers, frontendOrigin string) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}
	if frontendOrigin != "" {
		corsCfg.AllowOrigins = []string{frontendOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Backend is running"})
	})

	// niche 细分市场
	niches := r.Group("/niches")
	{
		niches.GET("", ctls.Niche.ListNiches)
		niches.POST("/suggest", ctls.Niche.SuggestNiches)
		niches.POST("/choose", ctls.Niche.ChooseNiche)
	}

	// product 本地商品
	products := r.Group("/products")
	{
		products.GET("", ctls.Product.ListProducts)
		products.POST("", ctls.Product.CreateProduct)
		products.GET("/:id", ctls.Product.GetProduct)
	}

	// printify 市场适配
	printify := r.Group("/printify")
	{
		printify.GET("/shops", ctls.Printify.GetShops)
		printify.GET("/catalog", ctls.Printify.GetCatalog)
		printify.GET("/catalog/:blueprint_id/variants", ctls.Printify.GetBlueprintVariants)
		printify.POST("/upload-image", ctls.Printify.UploadImage)
		printify.POST("/create", ctls.Printify.CreateProduct)
	}

	// template 选品模板
	templates := r.Group("/templates")
	{
		templates.GET("", ctls.Template.ListTemplates)
		templates.POST("", ctls.Template.CreateTemplate)
	}

	// design 设计稿
	designs := r.Group("/designs")
	{
		designs.GET("", ctls.Design.ListDesigns)
		designs.POST("/generate", ctls.Design.GenerateDesign)
	}

	// user 用户
	users := r.Group("/users")
	{
		users.POST("", ctls.User.Register)
		users.GET("/:id", ctls.User.GetUser)
	}

	return r
}
