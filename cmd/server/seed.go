package main

import (
	"fmt"

	"ecpm/internal/database"
	"ecpm/internal/models"
	"ecpm/pkg/logger"

	"gorm.io/gorm"
)

// seedData 初始化种子数据
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	// 1. 创建演示客户
	if err := createDemoCustomer(db); err != nil {
		return fmt.Errorf("创建演示客户失败: %v", err)
	}

	// 2. 创建演示元器件
	if err := createDemoComponents(db); err != nil {
		return fmt.Errorf("创建演示元器件失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// createDemoCustomer 创建演示客户
func createDemoCustomer(db *gorm.DB) error {
	var count int64
	db.Model(&models.Customer{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("客户数据已存在，跳过创建")
		return nil
	}

	customer := &models.Customer{
		Name:               "深圳华芯电子有限公司",
		Code:               "SZHX-001",
		CustomerType:       models.CustomerTypeDirect,
		Status:             models.CustomerStatusActive,
		CompanyAddress:     "深圳市南山区科技园南区",
		CompanyPhone:       "0755-88888888",
		CompanyEmail:       "info@szhx.example.com",
		PaymentTerms:       "Net 30",
		CurrencyPreference: "CNY",
		Contacts: []models.CustomerContact{
			{
				Name:        "王芳",
				Position:    "采购经理",
				Department:  "采购部",
				IsPurchaser: true,
				IsPrimary:   true,
				Mobile:      "13800000000",
				Email:       "wangfang@szhx.example.com",
			},
		},
	}

	if err := db.Create(customer).Error; err != nil {
		return err
	}

	logger.GetLogger().Infof("演示客户创建成功: %s", customer.Code)
	return nil
}

// createDemoComponents 创建演示元器件
func createDemoComponents(db *gorm.DB) error {
	var count int64
	db.Model(&models.ElectronicComponent{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("元器件数据已存在，跳过创建")
		return nil
	}

	outputVoltage := 3.3
	outputCurrentMax := 1.0
	dropoutVoltage := 0.3

	return db.Transaction(func(tx *gorm.DB) error {
		// LDO稳压器示例
		ldoBase := &models.ElectronicComponent{
			Name:                 "3.3V LDO稳压器",
			Manufacturer:         "TI",
			PartNumber:           "TLV75533PDBVR",
			Description:          "500mA低压差线性稳压器",
			PackageType:          "SOT-23-5",
			ComponentCategory:    models.CategoryPower,
			ComponentSubcategory: "ldo_regulator",
		}
		if err := tx.Create(ldoBase).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.PowerManagementChip{
			ComponentID:   ldoBase.ID,
			PowerChipType: models.PowerChipTypeLDO,
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.LDORegulator{
			ComponentID:      ldoBase.ID,
			OutputVoltage:    &outputVoltage,
			OutputCurrentMax: &outputCurrentMax,
			DropoutVoltage:   &dropoutVoltage,
		}).Error; err != nil {
			return err
		}

		// MCU示例
		clockFrequency := 72.0
		flashMemory := 64
		sramMemory := 20
		mcuBase := &models.ElectronicComponent{
			Name:                 "32位MCU",
			Manufacturer:         "ST",
			PartNumber:           "STM32F103C8T6",
			Description:          "ARM Cortex-M3 主流型MCU",
			PackageType:          "LQFP-48",
			ComponentCategory:    models.CategoryMCU,
			ComponentSubcategory: "mcu_controller",
		}
		if err := tx.Create(mcuBase).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.MCUController{
			ComponentID:             mcuBase.ID,
			CoreArchitecture:        "ARM Cortex-M3",
			ClockFrequency:          &clockFrequency,
			FlashMemory:             &flashMemory,
			SRAMMemory:              &sramMemory,
			CommunicationInterfaces: "I2C、SPI、UART、USB、CAN",
		}).Error; err != nil {
			return err
		}

		logger.GetLogger().Info("演示元器件创建成功")
		return nil
	})
}
