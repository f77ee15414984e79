package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ecpm/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB 每个测试用独立的内存数据库，开启外键以覆盖级联删除
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:ecpm_test_%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
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
		&models.Customer{},
		&models.CustomerContact{},
	)
	if err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}
