package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig 从 ./configs/config.yaml 与环境变量加载配置
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("data_dir", "/tmp")

	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 10)
	v.SetDefault("database.max_lifetime", 30)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.logstash_index", "logstash-trendradar")

	v.SetDefault("storage.driver", "local")

	v.SetDefault("preview.timeout_seconds", 8)
	v.SetDefault("preview.user_agent", "Mozilla/5.0 (compatible; REI/1.0)")
}

func bindEnv(v *viper.Viper) error {
	envs := map[string]string{
		"data_dir":         "DATA_DIR",
		"database.url":     "DATABASE_URL",
		"server.port":      "PORT",
		"storage.driver":   "STORAGE_DRIVER",
		"minio.endpoint":   "MINIO_ENDPOINT",
		"minio.access_key": "MINIO_ACCESS_KEY",
		"minio.secret_key": "MINIO_SECRET_KEY",
		"minio.bucket":     "MINIO_BUCKET",
	}
	for key, env := range envs {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}
	return nil
}
