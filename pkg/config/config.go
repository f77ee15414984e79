package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LogConfig struct {
	Level      string
	FilePath   string
	MaxSize    int    // MB
	MaxBackups int    // 保留的备份文件数
	MaxAge     int    // 保留天数
	Compress   bool   // 是否压缩
	Format     string // json 或 text
}

type RedisConfig struct {
	Host     string // Redis主机地址
	Port     int    // Redis端口
	Password string // Redis密码
	DB       int    // Redis数据库编号
	Prefix   string // 键前缀
}

type CacheConfig struct {
	Enabled    bool // 是否启用缓存（关闭后所有读取视为未命中）
	TTLSeconds int  // 缓存过期时间（秒）
}

type CORSConfig struct {
	AllowOrigins     []string // 允许的源
	AllowMethods     []string // 允许的HTTP方法
	AllowHeaders     []string // 允许的请求头
	ExposeHeaders    []string // 暴露的响应头
	AllowCredentials bool     // 是否允许携带凭证
	MaxAge           int      // 预检请求缓存时间（小时）
}

// 全局配置实例和同步锁
var (
	globalConfig *Config
	once         sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		var err error
		globalConfig, err = LoadConfig()
		if err != nil {
			// 如果加载失败，可以panic或使用默认配置
			panic("Failed to load config: " + err.Error())
		}
	})
	return globalConfig
}

// 获取环境变量，如果不存在则使用默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// 获取环境变量转换为int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// 获取环境变量转换为bool
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true"
	}
	return defaultValue
}

// 获取环境变量转换为字符串数组（逗号分隔）
func getEnvAsStringArray(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultValue
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("SERVER_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "electronic_components_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FilePath:   getEnv("LOG_FILE_PATH", "logs/app.log"),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 30),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
			Format:     getEnv("LOG_FORMAT", "json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "ecpm"),
		},
		Cache: CacheConfig{
			Enabled:    getEnvAsBool("CACHE_ENABLED", true),
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 300),
		},
		CORS: CORSConfig{
			AllowOrigins:     getEnvAsStringArray("CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowMethods:     getEnvAsStringArray("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			AllowHeaders:     getEnvAsStringArray("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"}),
			ExposeHeaders:    getEnvAsStringArray("CORS_EXPOSE_HEADERS", []string{"Content-Length", "Content-Type"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 12),
		},
	}

	return config, nil
}
