package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecpm/internal/database"
	"ecpm/internal/router"
	"ecpm/internal/services"
	"ecpm/pkg/config"
	"ecpm/pkg/logger"
	"ecpm/pkg/queue"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting Electronic Component & Purchaser Management service...")

	// 初始化数据库
	if err := database.Initialize(cfg); err != nil {
		appLogger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		// 关闭数据库连接
		if err := database.Close(); err != nil {
			appLogger.Error("Failed to close database:", err)
		}
		// 关闭Redis连接
		if err := database.CloseRedis(); err != nil {
			appLogger.Error("Failed to close Redis:", err)
		}
	}()

	// 执行数据库迁移
	if err := database.Migrate(); err != nil {
		appLogger.Fatalf("Failed to migrate database: %v", err)
	}

	// 执行种子数据初始化
	if err := seedData(); err != nil {
		appLogger.Fatalf("Failed to initialize seed data: %v", err)
	}

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	// 启动后台事件消费者（事件处理失败进入死信队列，不影响主流程）
	taskWorker := services.NewTaskWorker(database.GetRedisQueue())
	registerEventHandlers(taskWorker)
	taskWorker.Start(2)
	defer taskWorker.Stop()

	// 设置路由
	r := router.SetupRouter()

	// 启动服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// 启动服务
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Server started on port %s", cfg.Server.Port)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := server.Close(); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Server exited")
}

// registerEventHandlers 注册后台事件处理器
// 目前只做审计日志，后续可以在这里挂接通知、同步等处理
func registerEventHandlers(worker *services.TaskWorker) {
	appLogger := logger.GetLogger()

	logEvent := func(message *queue.EventMessage) error {
		appLogger.WithFields(logrus.Fields{
			"event_type":  message.EventType,
			"resource":    message.Resource,
			"resource_id": message.ResourceID,
		}).Info("业务事件")
		return nil
	}

	for _, eventType := range []string{
		"component.created", "component.updated", "component.deleted",
		"customer.created", "customer.status_updated", "customer.deleted",
	} {
		worker.RegisterHandler(eventType, logEvent)
	}
}
