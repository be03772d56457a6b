package migration

import (
	"warrantly/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.WarrantyRuleModel{},
		&models.ClaimModel{},
		&models.ClaimItemModel{},
		&models.ClaimNoteModel{},
		&models.ClaimMediaModel{},
	}
}
