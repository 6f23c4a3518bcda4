package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pod_dev_v1_202608/internal/controller"
	"pod_dev_v1_202608/internal/model"
	"pod_dev_v1_202608/internal/repository"
	"pod_dev_v1_202608/internal/router"
	"pod_dev_v1_202608/internal/service"
	"pod_dev_v1_202608/internal/task"
	"pod_dev_v1_202608/pkg/database"
)

func main() {
	// 0. 加载 .env（没有也不报错，直接用进程环境变量）
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用进程环境变量")
	}

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers, getEnv("FRONTEND_ORIGIN", ""))

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Niche    repository.NicheRepository
	Product  repository.ProductRepository
	Template repository.TemplateRepository
}

// Services 服务集合
type Services struct {
	AI       *service.AIService
	Printify *service.PrintifyService
	User     *service.UserService
	Niche    *service.NicheService
	Product  *service.ProductService
	Template *service.TemplateService
	Design   *service.DesignService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库（建表幂等，启动时执行一次）
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_URL", "dev.db")
	return database.InitDB(dsn,
		&model.User{},
		&model.Niche{},
		&model.Product{},
		&model.Design{},
		&model.Metadata{},
		&model.Template{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Niche:    repository.NewNicheRepository(db),
		Product:  repository.NewProductRepository(db),
		Template: repository.NewTemplateRepository(db),
	}

	// -------- 外部适配 --------
	aiSvc := service.NewAIService(&service.AIConfig{
		ApiKey: getEnv("OPENAI_API_KEY", ""),
		Model:  getEnv("OPENAI_MODEL", ""),
	})
	printifySvc := service.NewPrintifyService(&service.PrintifyConfig{
		APIKey:  getEnv("PRINTIFY_API_KEY", ""),
		BaseURL: getEnv("PRINTIFY_BASE_URL", ""),
	})

	// -------- 业务服务 --------
	services := &Services{
		AI:       aiSvc,
		Printify: printifySvc,
		User:     service.NewUserService(repos.User),
		Niche:    service.NewNicheService(repos.Niche, aiSvc),
		Product:  service.NewProductService(repos.Product, printifySvc),
		Template: service.NewTemplateService(repos.Template),
		Design:   service.NewDesignService(repos.Product, aiSvc),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Niche:    controller.NewNicheController(services.Niche),
		Product:  controller.NewProductController(services.Product),
		Printify: controller.NewPrintifyController(services.Printify, services.Product),
		Template: controller.NewTemplateController(services.Template),
		Design:   controller.NewDesignController(services.Design),
		User:     controller.NewUserController(services.User),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	statsTask := task.NewStatsTask(deps.Repos.Product, deps.Repos.Niche)
	statsTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
