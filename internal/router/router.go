package router

import (
	"time"

	"ecpm/internal/database"
	"ecpm/internal/handlers"
	"ecpm/internal/middleware"
	"ecpm/internal/services"
	"ecpm/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	// 注册路由
	registerRoutes(router)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine) {

	db := database.GetDB()
	redisQueue := database.GetRedisQueue()
	redisCache := database.GetRedisCache()

	// API路由组
	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// 客户路由
		customerHandler := handlers.NewCustomerHandler(services.NewCustomerService(db, redisQueue))
		customers := api.Group("/customers")
		{
			customers.POST("", customerHandler.Create)                 // 创建客户（含联系人）
			customers.GET("", customerHandler.List)                    // 客户列表（分页、状态过滤）
			customers.GET("/code/:code", customerHandler.GetByCode)    // 按客户代码查询
			customers.GET("/:id", customerHandler.GetByID)             // 客户详情
			customers.PUT("/:id/status", customerHandler.UpdateStatus) // 更新客户状态
			customers.DELETE("/:id", customerHandler.Delete)           // 删除客户（级联联系人）
		}

		// 元器件路由
		componentHandler := handlers.NewComponentHandler(services.NewComponentService(db, redisCache, redisQueue))
		components := api.Group("/components")
		{
			components.GET("", componentHandler.List)        // 元器件列表（分类过滤、分页）
			components.GET("/:id", componentHandler.GetByID) // 元器件详情
			components.PUT("/:id", componentHandler.Update)  // 更新通用字段
			components.DELETE("/:id", componentHandler.Delete)

			// 每个具体叶子类型一个创建入口
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
	}
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "ECPM",
		"version":   "1.0.0",
	}
	response.Success(c, "success", data)
}

func ping(c *gin.Context) {
	response.Success(c, "pong", nil)
}
