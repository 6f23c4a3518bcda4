package model

// Template 选品模板：一组 blueprint 及各自允许的 variant 集合
type Template struct {
	BaseModel
	UserID int64  `gorm:"index;not null" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`
	Name   string `gorm:"size:255;not null" json:"name"`

	// Products: blueprint id 列表
	Products Int64Slice `gorm:"type:json" json:"products"`
	// Variants: blueprint id -> 允许的 variant id 列表
	Variants JSONMap `gorm:"type:json" json:"variants"`
}

func (Template) TableName() string {
	return "templates"
}
