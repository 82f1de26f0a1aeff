package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	// Максимальное число строк в одном пакетном импорте
	BatchMaxRows int

	JWT   JWTConfig
	Redis RedisConfig
	MinIO MinIOConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envJWTSecret    = "JWT_SECRET"
	envJWTExpiresIn = "JWT_EXPIRES_IN"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"

	defaultBatchMaxRows = 200
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.applyEnv(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// applyEnv дополняет конфиг секретами и адресами из окружения
func (cfg *Config) applyEnv() error {
	var err error

	if cfg.BatchMaxRows <= 0 {
		cfg.BatchMaxRows = defaultBatchMaxRows
	}

	cfg.JWT = JWTConfig{
		Token:         os.Getenv(envJWTSecret),
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Token == "" {
		return fmt.Errorf("%s must be set", envJWTSecret)
	}
	if v := os.Getenv(envJWTExpiresIn); v != "" {
		cfg.JWT.ExpiresIn, err = time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("jwt expiration must be a duration: %w", err)
		}
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO необязателен: без него загрузка иконок отключена
	cfg.MinIO = MinIOConfig{
		Endpoint:  os.Getenv(envMinIOEndpoint),
		AccessKey: os.Getenv(envMinIOAccessKey),
		SecretKey: os.Getenv(envMinIOSecretKey),
		Bucket:    os.Getenv(envMinIOBucket),
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "service-icons"
	}
	if v := os.Getenv(envMinIOUseSSL); v != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("minio ssl flag must be bool value: %w", err)
		}
	}

	return nil
}
