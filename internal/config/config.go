package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Режимы привязки токена к клиентскому ключу.
// Выбирается один на деплой, оба сразу не включаются.
const (
	BindingModeEquality = "equality"
	BindingModeDPoP     = "dpop"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		Secret            string `yaml:"secret"`
		AccessTTLMinutes  int    `yaml:"access_ttl_minutes"`
		RefreshTTLMinutes int    `yaml:"refresh_ttl_minutes"`
		BindingMode       string `yaml:"binding_mode"`
		SeedAdminUsername string `yaml:"seed_admin_username"`
		SeedAdminEmail    string `yaml:"seed_admin_email"`
		SeedAdminPassword string `yaml:"seed_admin_password"`
	} `yaml:"auth"`

	Email EmailConfig `yaml:"email"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

var AppConfig *Config

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// LoadConfig загружает конфигурацию один раз при старте.
// Если задан DATABASE_URL - конфигурация собирается из переменных
// окружения (режим теста/CI), иначе читается config/config.yaml.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.Secret = os.Getenv("JWT_SECRET")
	cfg.Auth.BindingMode = os.Getenv("AUTH_BINDING_MODE")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Auth.AccessTTLMinutes == 0 {
		cfg.Auth.AccessTTLMinutes = 15
	}
	if cfg.Auth.RefreshTTLMinutes == 0 {
		cfg.Auth.RefreshTTLMinutes = 7 * 24 * 60
	}
	if cfg.Auth.BindingMode == "" {
		cfg.Auth.BindingMode = BindingModeDPoP
	}
	if cfg.Auth.Secret == "" {
		// Ротация секрета инвалидирует все выданные токены,
		// версионирования ключей нет.
		log.Fatal("auth.secret is required")
	}
}
