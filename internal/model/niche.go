package model

// Niche 细分市场（两级类目树：parent_id 为空表示顶级）
// 只增不改：选定或采纳建议时各插入一行
type Niche struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name"`
	ParentID *int64 `gorm:"index" json:"parent_id"`
	UserID   *int64 `gorm:"index" json:"user_id"`

	// 关联
	Parent *Niche `gorm:"foreignKey:ParentID" json:"-"`
}

func (Niche) TableName() string {
	return "niches"
}
