package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisQueue Redis队列实现（List队列 + Pub/Sub广播）
type RedisQueue struct {
	client *redis.Client
	prefix string
}

// EventMessage 队列中的事件消息
type EventMessage struct {
	ID         string                 `json:"id"`
	EventType  string                 `json:"event_type"` // 事件类型，如 component.created
	Resource   string                 `json:"resource"`   // 资源类型：component / customer
	ResourceID string                 `json:"resource_id"`
	Payload    map[string]interface{} `json:"payload"`
	Created    int64                  `json:"created"`
}

// Config Redis配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// NewRedisQueue 创建Redis队列实例
func NewRedisQueue(config *Config) *RedisQueue {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "ecpm:queue"
	}

	return &RedisQueue{
		client: client,
		prefix: prefix,
	}
}

// Close 关闭Redis连接
func (q *RedisQueue) Close() error {
	return q.client.Close()
}

// Ping 测试Redis连接
func (q *RedisQueue) Ping() error {
	ctx := context.Background()
	return q.client.Ping(ctx).Err()
}

// Enqueue 将事件加入队列（左侧入队）
func (q *RedisQueue) Enqueue(queueName string, message *EventMessage) error {
	ctx := context.Background()

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Created == 0 {
		message.Created = time.Now().Unix()
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("序列化事件消息失败: %v", err)
	}

	if err := q.client.LPush(ctx, q.queueKey(queueName), data).Err(); err != nil {
		return fmt.Errorf("事件入队失败: %v", err)
	}

	return nil
}

// Dequeue 从队列中取出事件（右侧阻塞出队），超时返回nil
func (q *RedisQueue) Dequeue(queueName string, timeout time.Duration) (*EventMessage, error) {
	ctx := context.Background()

	result, err := q.client.BRPop(ctx, timeout, q.queueKey(queueName)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	// BRPop返回 [key, value]
	var message EventMessage
	if err := json.Unmarshal([]byte(result[1]), &message); err != nil {
		return nil, fmt.Errorf("解析事件消息失败: %v", err)
	}

	return &message, nil
}

// Publish 发布事件到指定频道
func (q *RedisQueue) Publish(channel string, message *EventMessage) error {
	ctx := context.Background()

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Created == 0 {
		message.Created = time.Now().Unix()
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("序列化事件消息失败: %v", err)
	}

	return q.client.Publish(ctx, q.channelKey(channel), data).Err()
}

// Subscribe 订阅频道，返回消息通道（调用方负责关闭PubSub）
func (q *RedisQueue) Subscribe(channels ...string) *redis.PubSub {
	ctx := context.Background()
	keys := make([]string, 0, len(channels))
	for _, ch := range channels {
		keys = append(keys, q.channelKey(ch))
	}
	return q.client.Subscribe(ctx, keys...)
}

// QueueLength 获取队列长度
func (q *RedisQueue) QueueLength(queueName string) (int64, error) {
	ctx := context.Background()
	return q.client.LLen(ctx, q.queueKey(queueName)).Result()
}

func (q *RedisQueue) queueKey(queueName string) string {
	return fmt.Sprintf("%s:%s", q.prefix, queueName)
}

func (q *RedisQueue) channelKey(channel string) string {
	return fmt.Sprintf("%s:channel:%s", q.prefix, channel)
}
