package repository

import (
	"context"

	"gorm.io/gorm"

	"pod_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口（含设计与文案子记录操作）
type ProductRepository interface {
	// 商品
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)

	// 设计
	CreateDesign(ctx context.Context, design *model.Design) error
	ListDesignsByProduct(ctx context.Context, productID int64) ([]model.Design, error)
	CountDesigns(ctx context.Context) (int64, error)

	// 文案
	CreateMetadata(ctx context.Context, meta *model.Metadata) error
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&products).Error
	return products, err
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error
	return total, err
}

func (r *productRepo) CreateDesign(ctx context.Context, design *model.Design) error {
	return r.db.WithContext(ctx).Create(design).Error
}

func (r *productRepo) ListDesignsByProduct(ctx context.Context, productID int64) ([]model.Design, error) {
	var designs []model.Design
	err := r.db.WithContext(ctx).
		Preload("MetadataItems").
		Where("product_id = ?", productID).
		Find(&designs).Error
	return designs, err
}

func (r *productRepo) CountDesigns(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Design{}).Count(&total).Error
	return total, err
}

func (r *productRepo) CreateMetadata(ctx context.Context, meta *model.Metadata) error {
	return r.db.WithContext(ctx).Create(meta).Error
}
