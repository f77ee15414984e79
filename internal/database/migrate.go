package database

import (
	"ecpm/internal/models"
	"ecpm/pkg/logger"
)

// Migrate 执行数据库迁移
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	// 基础表在前，共享主键的子类表依赖基础表
	err := DB.AutoMigrate(
		&models.ElectronicComponent{},
		&models.PowerManagementChip{},
		&models.ACDCController{},
		&models.DCDCConverter{},
		&models.LDORegulator{},
		&models.MCUController{},
		&models.MemoryChip{},
		&models.DiscreteDevice{},
		&models.PassiveComponent{},
		&models.Filter{},
		&models.Relay{},
		// 客户域
		&models.Customer{},
		&models.CustomerContact{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")

	return nil
}
