package database

import (
	"sync"
	"time"

	"ecpm/pkg/cache"
	"ecpm/pkg/config"
	"ecpm/pkg/queue"
)

var (
	redisQueueInstance *queue.RedisQueue
	redisQueueOnce     sync.Once

	redisCacheInstance *cache.RedisCache
	redisCacheOnce     sync.Once
)

// GetRedisQueue 获取Redis队列的单例实例
func GetRedisQueue() *queue.RedisQueue {
	redisQueueOnce.Do(func() {
		cfg := config.GetConfig()
		redisQueueInstance = queue.NewRedisQueue(&queue.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix + ":queue",
		})
	})
	return redisQueueInstance
}

// GetRedisCache 获取Redis缓存的单例实例
func GetRedisCache() *cache.RedisCache {
	redisCacheOnce.Do(func() {
		cfg := config.GetConfig()
		redisCacheInstance = cache.NewRedisCache(&cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix + ":cache",
			TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
			Enabled:  cfg.Cache.Enabled,
		})
	})
	return redisCacheInstance
}

// CloseRedis 关闭Redis连接
func CloseRedis() error {
	if redisQueueInstance != nil {
		if err := redisQueueInstance.Close(); err != nil {
			return err
		}
	}
	if redisCacheInstance != nil {
		return redisCacheInstance.Close()
	}
	return nil
}
