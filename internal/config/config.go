package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

const (
	ModeBatch  = "batch"
	ModeServer = "server"
)

type Config struct {
	Env        string   `yaml:"env" env:"ENV" env-default:"prod"`
	Mode       string   `yaml:"mode" env:"PAYROLL_MODE" env-default:"batch"`
	Input      Input    `yaml:"input"`
	OutputDir  string   `yaml:"output_dir" env:"PAYROLL_OUTPUT_DIR" env-default:"."`
	Pay        Pay      `yaml:"pay"`
	Holidays   []string `yaml:"holidays" env:"PAYROLL_HOLIDAYS" env-separator:","`
	HTTPServer `yaml:"http_server"`
	Metrics    Metrics `yaml:"metrics"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`
}

// Input описывает исходные книги. Номера листов с единицы, как в Excel.
type Input struct {
	RecordsPath  string `yaml:"records_path" env:"PAYROLL_RECORDS"`
	RecordsSheet int    `yaml:"records_sheet" env-default:"2"`
	CoverPath    string `yaml:"cover_path" env:"PAYROLL_COVER"`
	CoverSheet   int    `yaml:"cover_sheet" env-default:"1"`
}

type Pay struct {
	BaseHourly      float64 `yaml:"base_hourly" env-default:"220"`
	Tier2Multiplier float64 `yaml:"tier2_multiplier" env-default:"1.34"`
	Tier3Multiplier float64 `yaml:"tier3_multiplier" env-default:"1.67"`
	HolidayFactor   float64 `yaml:"holiday_multiplier" env-default:"2"`
	TransitionFlat  float64 `yaml:"transition_flat" env-default:"35"`
	SecondaryFlat   float64 `yaml:"secondary_flat" env-default:"650"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
	MaxUpload   int64         `yaml:"max_upload_bytes" env-default:"33554432"`
}

type Metrics struct {
	PushURL string `yaml:"push_url" env:"PAYROLL_PUSH_URL"`
	JobName string `yaml:"job_name" env-default:"care_payroll"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Mode != ModeBatch && cfg.Mode != ModeServer {
		return nil, fmt.Errorf("%s: unknown mode %q", op, cfg.Mode)
	}
	if cfg.Mode == ModeBatch && cfg.Input.RecordsPath == "" {
		return nil, fmt.Errorf("%s: input.records_path is required in batch mode", op)
	}

	return &cfg, nil
}
