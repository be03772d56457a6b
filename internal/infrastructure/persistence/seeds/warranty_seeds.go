// Package seeds loads reference data the claim engine needs at startup.
package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"warrantly/internal/infrastructure/persistence/models"
)

type warrantyRuleSeed struct {
	ProductType    string `yaml:"product_type"`
	DurationMonths int    `yaml:"duration_months"`
	Coverage       string `yaml:"coverage"`
	Exclusions     string `yaml:"exclusions"`
}

type categorySeed struct {
	Name         string `yaml:"name"`
	ApproverRole string `yaml:"approver_role"`
	SLADays      int    `yaml:"sla_days"`
	Description  string `yaml:"description"`
}

type seedFile struct {
	WarrantyRules []warrantyRuleSeed `yaml:"warranty_rules"`
	Categories    []categorySeed     `yaml:"categories"`
}

// SeedWarrantyData loads warranty rules and claim categories from a YAML file
// and upserts them. Existing rows keyed by product type or category name are
// updated in place so edits to the seed file take effect on restart.
func SeedWarrantyData(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read warranty seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse warranty seed file: %w", err)
	}

	for _, rule := range file.WarrantyRules {
		if rule.ProductType == "" {
			return fmt.Errorf("warranty rule seed with empty product_type")
		}

		record := models.WarrantyRuleModel{
			ProductType:    rule.ProductType,
			DurationMonths: rule.DurationMonths,
			Coverage:       rule.Coverage,
			Exclusions:     rule.Exclusions,
		}
		err := db.Where(models.WarrantyRuleModel{ProductType: rule.ProductType}).
			Assign(map[string]interface{}{
				"duration_months": rule.DurationMonths,
				"coverage":        rule.Coverage,
				"exclusions":      rule.Exclusions,
			}).
			FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("failed to seed warranty rule %q: %w", rule.ProductType, err)
		}
	}

	for _, cat := range file.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category seed with empty name")
		}

		record := models.CategoryModel{
			Name:         cat.Name,
			ApproverRole: cat.ApproverRole,
			SLADays:      cat.SLADays,
			Description:  cat.Description,
		}
		err := db.Where(models.CategoryModel{Name: cat.Name}).
			Assign(map[string]interface{}{
				"approver_role": cat.ApproverRole,
				"sla_days":      cat.SLADays,
				"description":   cat.Description,
			}).
			FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("failed to seed claim category %q: %w", cat.Name, err)
		}
	}

	return nil
}
