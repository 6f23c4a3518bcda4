package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pod_dev_v1_202608/internal/repository"
)

// StatsTask 每小时打印一次库表规模，便于观察增长
type StatsTask struct {
	productRepo repository.ProductRepository
	nicheRepo   repository.NicheRepository
	cron        *cron.Cron
}

// NewStatsTask 创建统计任务
func NewStatsTask(productRepo repository.ProductRepository, nicheRepo repository.NicheRepository) *StatsTask {
	return &StatsTask{
		productRepo: productRepo,
		nicheRepo:   nicheRepo,
		cron:        cron.New(),
	}
}

// Start 启动定时任务
func (t *StatsTask) Start() {
	t.cron.AddFunc("@hourly", t.report)
	t.cron.Start()
	log.Println("[Task] 统计任务已启动")
}

// Stop 停止定时任务
func (t *StatsTask) Stop() {
	t.cron.Stop()
}

func (t *StatsTask) report() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := t.productRepo.Count(ctx)
	if err != nil {
		log.Printf("[Task] 商品统计失败: %v", err)
		return
	}
	designs, err := t.productRepo.CountDesigns(ctx)
	if err != nil {
		log.Printf("[Task] 设计统计失败: %v", err)
		return
	}
	niches, err := t.nicheRepo.Count(ctx)
	if err != nil {
		log.Printf("[Task] 细分市场统计失败: %v", err)
		return
	}

	log.Printf("[Task] 当前规模: products=%d designs=%d niches=%d", products, designs, niches)
}
