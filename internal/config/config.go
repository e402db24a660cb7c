package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"prod"`
	ErrorLogPath string `yaml:"error_log_path" env:"ERROR_LOG_PATH" env-default:"errors.log"`
	HTTPServer   `yaml:"http_server"`
	DB           `yaml:"db"`
	Credentials  `yaml:"credentials"`

	JWTSecret      string   `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	User     string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"db_password" env:"DB_PASSWORD"`
	Host     string `yaml:"db_host" env:"DB_HOST" env-required:"true"`
	Port     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	Name     string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	Migrate  bool   `yaml:"migrate" env:"DB_MIGRATE" env-default:"false"`
}

// Credentials aponta para a planilha de logins: Google Sheet ou um .xlsx local.
type Credentials struct {
	SheetID               string `yaml:"sheet_id" env:"SHEET_ID"`
	SheetRange            string `yaml:"sheet_range" env:"SHEET_RANGE" env-default:"Usuarios!A2:C"`
	GoogleCredentialsFile string `yaml:"google_credentials_file" env:"GOOGLE_CREDENTIALS_FILE"`
	XLSXPath              string `yaml:"xlsx_path" env:"CREDENTIALS_XLSX"`
	XLSXSheet             string `yaml:"xlsx_sheet" env:"CREDENTIALS_XLSX_SHEET" env-default:"Usuarios"`
}

func (c Credentials) Validate() error {
	if c.SheetID == "" && c.XLSXPath == "" {
		return errors.New("SHEET_ID or CREDENTIALS_XLSX must be set")
	}
	if c.SheetID != "" && c.GoogleCredentialsFile == "" {
		return errors.New("GOOGLE_CREDENTIALS_FILE is required when SHEET_ID is set")
	}
	return nil
}

// Load lê o .env (se existir), depois o YAML de CONFIG_PATH, depois o ambiente.
func Load() (*Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	if err := cfg.Credentials.Validate(); err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
