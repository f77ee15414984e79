package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecpm/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisCache Redis键值缓存封装
// 仅作尽力而为的旁路缓存：任何错误只记录日志，按未命中处理，不影响业务正确性
type RedisCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	enabled bool
}

// Config Redis缓存配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
	Enabled  bool
}

// NewRedisCache 创建Redis缓存实例
func NewRedisCache(config *Config) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "ecpm:cache"
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &RedisCache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		enabled: config.Enabled,
	}
}

// Close 关闭Redis连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping 测试Redis连接
func (c *RedisCache) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

// Get 获取缓存数据，未命中或出错返回false
func (c *RedisCache) Get(key string, dest interface{}) bool {
	if c == nil || !c.enabled {
		return false
	}

	ctx := context.Background()
	data, err := c.client.Get(ctx, c.cacheKey(key)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().Warnf("缓存读取失败 key=%s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		logger.GetLogger().Warnf("缓存数据解析失败 key=%s: %v", key, err)
		return false
	}
	return true
}

// Set 设置缓存数据
func (c *RedisCache) Set(key string, value interface{}) {
	if c == nil || !c.enabled {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().Warnf("缓存数据序列化失败 key=%s: %v", key, err)
		return
	}

	ctx := context.Background()
	if err := c.client.Set(ctx, c.cacheKey(key), data, c.ttl).Err(); err != nil {
		logger.GetLogger().Warnf("缓存写入失败 key=%s: %v", key, err)
	}
}

// Delete 删除缓存数据
func (c *RedisCache) Delete(key string) {
	if c == nil || !c.enabled {
		return
	}

	ctx := context.Background()
	if err := c.client.Del(ctx, c.cacheKey(key)).Err(); err != nil {
		logger.GetLogger().Warnf("缓存删除失败 key=%s: %v", key, err)
	}
}

// Exists 检查缓存键是否存在
func (c *RedisCache) Exists(key string) bool {
	if c == nil || !c.enabled {
		return false
	}

	ctx := context.Background()
	n, err := c.client.Exists(ctx, c.cacheKey(key)).Result()
	if err != nil {
		logger.GetLogger().Warnf("缓存检查失败 key=%s: %v", key, err)
		return false
	}
	return n > 0
}

func (c *RedisCache) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}
