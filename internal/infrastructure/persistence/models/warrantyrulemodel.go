package models

type WarrantyRuleModel struct {
	ID             uint   `gorm:"primaryKey"`
	ProductType    string `gorm:"uniqueIndex;size:50;not null"`
	DurationMonths int    `gorm:"not null"`
	Coverage       string `gorm:"type:text"`
	Exclusions     string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (WarrantyRuleModel) TableName() string {
	return "warranty_rules"
}
