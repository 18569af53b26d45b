package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the fallback signing secret used when none is
// configured. Deployments must override it; startup logs a warning when
// this value is in effect.
const DefaultJWTSecret = "default-secret-change-in-production"

type Config struct {
	DB      DBConfig
	Server  ServerConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// UnreadCountTTL bounds staleness of the chat unread-count cache.
	UnreadCountTTL time.Duration
}

type StorageConfig struct {
	Bucket    string
	CDNDomain string
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("jwt.secret", DefaultJWTSecret)
	viper.SetDefault("jwt.token_ttl_hours", 168) // 7 days
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("redis.unread_count_ttl", 60)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		JWT: JWTConfig{
			SecretKey: viper.GetString("jwt.secret"),
			TokenTTL:  viper.GetDuration("jwt.token_ttl_hours") * time.Hour,
		},
		Redis: RedisConfig{
			Address:        viper.GetString("redis.address"),
			Password:       viper.GetString("redis.password"),
			DB:             viper.GetInt("redis.db"),
			UnreadCountTTL: viper.GetDuration("redis.unread_count_ttl") * time.Second,
		},
		Storage: StorageConfig{
			Bucket:    viper.GetString("storage.bucket"),
			CDNDomain: viper.GetString("storage.cdn_domain"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Environment variables win over file values.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		config.Storage.Bucket = bucket
	}
	if cdn := os.Getenv("STORAGE_CDN_DOMAIN"); cdn != "" {
		config.Storage.CDNDomain = cdn
	}

	return config, nil
}

// IsDefaultJWTSecret reports whether the insecure fallback secret is active.
func (c *Config) IsDefaultJWTSecret() bool {
	return c.JWT.SecretKey == DefaultJWTSecret
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
