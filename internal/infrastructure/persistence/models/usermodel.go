package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	DisplayName  string `gorm:"size:200;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	ApproverRole string `gorm:"size:50;index"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
