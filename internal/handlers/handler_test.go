package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ecpm/internal/models"
	"ecpm/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// apiResponse 统一响应信封
type apiResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Details []string               `json:"details"`
}

// newTestRouter 用内存数据库搭建完整路由，缓存和队列留空
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ecpm_handler_test_%d?mode=memory&cache=shared&_foreign_keys=on",
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

	customerHandler := NewCustomerHandler(services.NewCustomerService(db, nil))
	componentHandler := NewComponentHandler(services.NewComponentService(db, nil, nil))

	router := gin.New()
	v1 := router.Group("/api/v1")

	customers := v1.Group("/customers")
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/code/:code", customerHandler.GetByCode)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id/status", customerHandler.UpdateStatus)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	components := v1.Group("/components")
	{
		components.GET("", componentHandler.List)
		components.GET("/:id", componentHandler.GetByID)
		components.PUT("/:id", componentHandler.Update)
		components.DELETE("/:id", componentHandler.Delete)
		components.POST("/power/ac-dc", componentHandler.CreateACDC)
		components.POST("/power/dc-dc", componentHandler.CreateDCDC)
		components.POST("/power/ldo", componentHandler.CreateLDO)
		components.POST("/mcu", componentHandler.CreateMCU)
		components.POST("/memory", componentHandler.CreateMemory)
		components.POST("/discrete", componentHandler.CreateDiscrete)
		components.POST("/passive", componentHandler.CreatePassive)
		components.POST("/filter", componentHandler.CreateFilter)
		components.POST("/relay", componentHandler.CreateRelay)
	}

	return router
}

// doRequest 发起测试请求并解析统一响应信封
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, *apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}

	return w, &resp
}
