package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SyncConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	Sync          `yaml:"sync"`
	OrderDB       `yaml:"order_db"`
	Sheet         `yaml:"sheet"`
	Rates         `yaml:"rates"`
	Telegram      `yaml:"telegram"`
	KafkaService  `yaml:"kafka-service"`
	MetricsServer `yaml:"metrics_server"`
}

type Sync struct {
	IntervalSeconds     int    `yaml:"interval_seconds" env:"JOB_FREQUENCY_SECOND" env-default:"60"`
	CycleTimeoutSeconds int    `yaml:"cycle_timeout_seconds" env-default:"30"`
	Timezone            string `yaml:"timezone" env-default:"UTC"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Sheet struct {
	ID             string `yaml:"id" env:"SHEET_ID"`
	ExportURL      string `yaml:"export_url" env-default:"https://docs.google.com/spreadsheets/d/%s/export?format=csv"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type Rates struct {
	URL            string `yaml:"url" env-default:"https://www.cbr.ru/scripts/XML_daily.asp"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type Telegram struct {
	BotToken       string `yaml:"bot_token" env:"TELEGRAM_BOT_ID"`
	ChatID         string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type KafkaService struct {
	Host  string `yaml:"host" env-default:"localhost"`
	Port  string `yaml:"port" env-default:"9092"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:""`
	Port string `yaml:"port" env-default:"9090"`
}

func MustLoad() *SyncConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SYNC_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SYNC_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SyncConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
