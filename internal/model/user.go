package model

// User 用户（仅作为商品/模板的归属方，无登录态）
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;index" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`

	// 关联
	Products []Product `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
