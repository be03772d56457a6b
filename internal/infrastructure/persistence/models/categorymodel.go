package models

type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	ApproverRole string `gorm:"size:50;index"`
	SLADays      int    `gorm:"not null;default:0"`
	Description  string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "claim_categories"
}
