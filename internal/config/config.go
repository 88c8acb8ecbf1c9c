package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Upload     Upload     `yaml:"upload"`
	Thumbnail  Thumbnail  `yaml:"thumbnail"`
	Archive    Archive    `yaml:"archive"`
	Kafka      Kafka      `yaml:"kafka"`
}

type Storage struct {
	// MetadataPath is the single JSON document holding all album metadata.
	MetadataPath  string `yaml:"metadata_path" env:"METADATA_PATH" env-default:"./data/albums.json"`
	UploadsRoot   string `yaml:"uploads_root" env:"UPLOADS_ROOT" env-default:"./data/uploads/albums"`
	ThumbnailRoot string `yaml:"thumbnail_root" env:"THUMBNAIL_ROOT" env-default:"./data/uploads/thumbnails"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Upload struct {
	MaxFileSize  int64    `yaml:"max_file_size" env-default:"52428800"`
	AllowedTypes []string `yaml:"allowed_types" env-default:"image/jpeg,image/png,image/gif,image/webp"`
}

type Thumbnail struct {
	Size    int `yaml:"size" env-default:"400"`
	Quality int `yaml:"quality" env-default:"80"`
}

type Archive struct {
	FolderPrefix     string `yaml:"folder_prefix" env-default:"Photo"`
	LightLabel       string `yaml:"light_label" env-default:"web"`
	MaxLabel         string `yaml:"max_label" env-default:"print"`
	CompressionLevel int    `yaml:"compression_level" env-default:"5"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"gallery-events"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
