package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type ImportConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
}

type AppSubConfig struct {
	ActivityPageSize   int `mapstructure:"activity_page_size"`
	ExportHistoryLimit int `mapstructure:"export_history_limit"`
	DefaultMinStock    int `mapstructure:"default_min_stock"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Export   ExportConfig   `mapstructure:"export"`
	Import   ImportConfig   `mapstructure:"import"`
	App      AppSubConfig   `mapstructure:"app"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. STOCKMANAGER_SERVER_PORT=9000
		v.SetEnvPrefix("STOCKMANAGER")
		v.AutomaticEnv()

		v.SetDefault("server.address", "127.0.0.1")
		v.SetDefault("server.port", 8080)
		v.SetDefault("database.path", "data/stockmanager.db")
		v.SetDefault("export.dir", "exports")
		v.SetDefault("import.upload_dir", "uploads")
		v.SetDefault("app.activity_page_size", 20)
		v.SetDefault("app.export_history_limit", 10000)
		v.SetDefault("app.default_min_stock", 5)

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
