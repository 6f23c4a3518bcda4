package model

import (
	"gorm.io/datatypes"
)

// Product 本地商品记录（发布到 Printify 前的草稿载体）
type Product struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	// --- Printify 必填字段 ---
	BlueprintID       int64  `gorm:"not null" json:"blueprint_id"`
	PrintProviderID   int64  `gorm:"not null" json:"print_provider_id"`
	Title             string `gorm:"size:255;not null" json:"title"`
	Description       string `gorm:"type:text" json:"description"`
	SafetyInformation string `gorm:"type:text" json:"safety_information"`

	// 状态为自由字符串，应用层不做状态机约束
	Status string `gorm:"size:32;index;default:draft" json:"status"`

	// Payload 承载 variants / print_areas 原始 JSON，应用层不解释内容
	Payload datatypes.JSON `gorm:"type:json" json:"payload"`

	// 关联
	Designs []Design `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Design 商品设计（文字/图案），归属单个商品
type Design struct {
	BaseModel
	ProductID   int64    `gorm:"index;not null" json:"product_id"`
	Product     *Product `gorm:"foreignKey:ProductID" json:"-"`
	DesignType  string   `gorm:"size:50" json:"design_type"`
	TextContent string   `gorm:"type:text" json:"text_content"`
	ImageURL    string   `gorm:"size:2048" json:"image_url"`
	Status      string   `gorm:"size:32;default:pending" json:"status"`

	// 关联
	MetadataItems []Metadata `gorm:"foreignKey:DesignID" json:"metadata_items,omitempty"`
}

func (Design) TableName() string {
	return "designs"
}

// Metadata 设计文案（标题/描述/逗号分隔标签）
type Metadata struct {
	BaseModel
	DesignID    int64   `gorm:"index;not null" json:"design_id"`
	Design      *Design `gorm:"foreignKey:DesignID" json:"-"`
	Title       string  `gorm:"size:255" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Tags        string  `gorm:"type:text" json:"tags"`
}

func (Metadata) TableName() string {
	return "design_metadata"
}
