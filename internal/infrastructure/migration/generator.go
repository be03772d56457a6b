package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"warrantly/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upContent := g.generateUpMigrationTemplate(name)
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	downContent := g.generateDownMigrationTemplate(name)
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateUpMigrationTemplate generates a template for up migration
func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Description: Add description here

-- Add your SQL statements here
-- Example:
-- CREATE TABLE example_table (
--     id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
--     name VARCHAR(255) NOT NULL,
--     created_at BIGINT NOT NULL,
--     updated_at BIGINT NOT NULL
-- );

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// generateDownMigrationTemplate generates a template for down migration
func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
-- Description: Add rollback description here

-- Add your rollback SQL statements here
-- Example:
-- DROP TABLE IF EXISTS example_table;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateClaimTablesMigration creates the initial claims schema migration
func (g *Generator) CreateClaimTablesMigration() error {
	g.logger.Infow("creating initial claims schema migration")

	// Use a fixed timestamp for the initial migration
	timestamp := "000001"
	name := "create_claim_tables"

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upContent := g.generateClaimTablesUpMigration()
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create claims schema up migration: %w", err)
	}

	downContent := g.generateClaimTablesDownMigration()
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create claims schema down migration: %w", err)
	}

	g.logger.Infow("claims schema migration created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// generateClaimTablesUpMigration generates the up migration for the claims schema
func (g *Generator) generateClaimTablesUpMigration() string {
	return `-- Migration: Create claims schema
-- Created: Initial migration
-- Description: Create claims, claim_items, claim_notes, claim_media,
-- claim_categories, warranty_rules and users tables

CREATE TABLE IF NOT EXISTS users (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    display_name VARCHAR(200) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    approver_role VARCHAR(50),
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_users_approver_role (approver_role),
    INDEX idx_users_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS claim_categories (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(100) NOT NULL UNIQUE,
    approver_role VARCHAR(50),
    sla_days INT NOT NULL DEFAULT 0,
    description TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_claim_categories_approver_role (approver_role)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS warranty_rules (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    product_type VARCHAR(50) NOT NULL UNIQUE,
    duration_months INT NOT NULL,
    coverage TEXT,
    exclusions TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS claims (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    claim_number VARCHAR(50) NOT NULL UNIQUE,
    order_id VARCHAR(100) NOT NULL,
    customer_name VARCHAR(200) NOT NULL,
    customer_email VARCHAR(255),
    customer_phone VARCHAR(50),
    delivery_date BIGINT NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL DEFAULT 'new',
    created_by BIGINT UNSIGNED,
    assigned_to BIGINT UNSIGNED,
    version INT UNSIGNED NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_claims_order_id (order_id),
    INDEX idx_claims_status (status),
    INDEX idx_claims_created_by (created_by),
    INDEX idx_claims_assigned_to (assigned_to),
    INDEX idx_claims_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS claim_items (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    claim_id BIGINT UNSIGNED NOT NULL,
    order_id VARCHAR(100) NOT NULL,
    sku VARCHAR(100) NOT NULL,
    product_name VARCHAR(200),
    product_type VARCHAR(50) NOT NULL,
    category_id BIGINT UNSIGNED NOT NULL,
    quantity INT NOT NULL,
    issue TEXT,
    created_at BIGINT NOT NULL,
    UNIQUE KEY idx_claim_items_order_sku (order_id, sku),
    INDEX idx_claim_items_claim_id (claim_id),
    INDEX idx_claim_items_category_id (category_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS claim_notes (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    claim_id BIGINT UNSIGNED NOT NULL,
    kind VARCHAR(20) NOT NULL,
    body TEXT NOT NULL,
    old_status VARCHAR(20),
    new_status VARCHAR(20),
    author_id BIGINT UNSIGNED,
    created_at BIGINT NOT NULL,
    INDEX idx_claim_notes_claim_id (claim_id),
    INDEX idx_claim_notes_author_id (author_id),
    INDEX idx_claim_notes_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;

CREATE TABLE IF NOT EXISTS claim_media (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    claim_id BIGINT UNSIGNED NOT NULL,
    claim_item_id BIGINT UNSIGNED,
    media_type VARCHAR(10) NOT NULL,
    url VARCHAR(2048) NOT NULL,
    original_filename VARCHAR(255),
    size_bytes BIGINT NOT NULL,
    created_at BIGINT NOT NULL,
    INDEX idx_claim_media_claim_id (claim_id),
    INDEX idx_claim_media_claim_item_id (claim_item_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
`
}

// generateClaimTablesDownMigration generates the down migration for the claims schema
func (g *Generator) generateClaimTablesDownMigration() string {
	return `-- Rollback Migration: Create claims schema
-- Created: Initial migration rollback
-- Description: Drop the claims schema tables

DROP TABLE IF EXISTS claim_media;
DROP TABLE IF EXISTS claim_notes;
DROP TABLE IF EXISTS claim_items;
DROP TABLE IF EXISTS claims;
DROP TABLE IF EXISTS warranty_rules;
DROP TABLE IF EXISTS claim_categories;
DROP TABLE IF EXISTS users;
`
}
