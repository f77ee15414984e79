package services

import (
	"sync"
	"time"

	"ecpm/pkg/logger"
	"ecpm/pkg/queue"
)

// 队列名称
const (
	EventQueueName      = "events"
	FailedTaskQueueName = "failed_tasks"
)

// EventHandler 事件处理函数
type EventHandler func(message *queue.EventMessage) error

// TaskWorker 后台事件消费者
// 消费业务变更事件队列，按事件类型分发到已注册的处理器
// 处理失败的事件进入死信队列，绝不影响请求链路的正确性
type TaskWorker struct {
	queue    *queue.RedisQueue
	handlers map[string]EventHandler

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewTaskWorker 创建事件消费者
func NewTaskWorker(redisQueue *queue.RedisQueue) *TaskWorker {
	return &TaskWorker{
		queue:    redisQueue,
		handlers: make(map[string]EventHandler),
	}
}

// RegisterHandler 注册事件处理器（需在Start之前调用）
func (w *TaskWorker) RegisterHandler(eventType string, handler EventHandler) {
	w.handlers[eventType] = handler
	logger.GetLogger().Infof("Registered handler for event type: %s", eventType)
}

// Start 启动消费协程
func (w *TaskWorker) Start(workerCount int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	if workerCount < 1 {
		workerCount = 1
	}

	w.running = true
	w.stop = make(chan struct{})

	for i := 0; i < workerCount; i++ {
		w.wg.Add(1)
		go w.run(i + 1)
	}
}

// Stop 停止所有消费协程并等待退出
func (w *TaskWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stop)
	w.mu.Unlock()

	w.wg.Wait()
	logger.GetLogger().Info("All event workers stopped")
}

func (w *TaskWorker) run(workerID int) {
	defer w.wg.Done()

	appLogger := logger.GetLogger()
	appLogger.Infof("Event worker %d started", workerID)

	for {
		select {
		case <-w.stop:
			appLogger.Infof("Event worker %d stopped", workerID)
			return
		default:
		}

		message, err := w.queue.Dequeue(EventQueueName, 5*time.Second)
		if err != nil {
			appLogger.Errorf("Event worker %d dequeue failed: %v", workerID, err)
			time.Sleep(time.Second)
			continue
		}
		if message == nil {
			continue
		}

		w.process(message)
	}
}

func (w *TaskWorker) process(message *queue.EventMessage) {
	appLogger := logger.GetLogger()

	handler, ok := w.handlers[message.EventType]
	if !ok {
		appLogger.Warnf("No handler found for event type: %s", message.EventType)
		return
	}

	if err := handler(message); err != nil {
		appLogger.Errorf("Event %s handling failed: %v", message.ID, err)
		w.handleFailed(message, err)
		return
	}

	appLogger.Debugf("Event %s (%s) processed", message.ID, message.EventType)
}

// handleFailed 失败事件进入死信队列
func (w *TaskWorker) handleFailed(message *queue.EventMessage, handleErr error) {
	payload := message.Payload
	if payload == nil {
		payload = make(map[string]interface{})
	}
	payload["error"] = handleErr.Error()
	payload["failed_at"] = time.Now().Unix()

	failed := &queue.EventMessage{
		EventType:  message.EventType,
		Resource:   message.Resource,
		ResourceID: message.ResourceID,
		Payload:    payload,
	}

	if err := w.queue.Enqueue(FailedTaskQueueName, failed); err != nil {
		logger.GetLogger().Errorf("Failed to enqueue dead letter for event %s: %v", message.ID, err)
	}
}
