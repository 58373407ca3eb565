package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Storage    Storage    `yaml:"storage"`
	Media      Media      `yaml:"media"`
	Upload     Upload     `yaml:"upload"`
	Session    Session    `yaml:"session"`
	Admin      Admin      `yaml:"admin"`
	Kafka      Kafka      `yaml:"kafka"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:3000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env-default:"209715200" validate:"gt=0"`
}

type Database struct {
	Driver       string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres" validate:"oneof=postgres sqlite"`
	URL          string `yaml:"url" env:"DATABASE_URL"`
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User         string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password     string `yaml:"password" env:"DB_PASSWORD"`
	DBName       string `yaml:"dbname" env:"DB_NAME" env-default:"gallery"`
	SSLMode      string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	Path         string `yaml:"path" env:"DB_PATH" env-default:"./database.db"`
	MaxOpenConns int    `yaml:"max_open_conns" env-default:"10"`
	MaxIdleConns int    `yaml:"max_idle_conns" env-default:"2"`
}

type Storage struct {
	Type      string `yaml:"type" env:"STORAGE_TYPE" env-default:"disk" validate:"oneof=disk s3"`
	PublicDir string `yaml:"public_dir" env:"PUBLIC_DIR" env-default:"./public"`
	URLPrefix string `yaml:"url_prefix" env-default:"uploads"`
	S3        S3     `yaml:"s3"`
}

type S3 struct {
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
	PathStyle bool   `yaml:"path_style" env-default:"false"`
}

type Media struct {
	FullWidth   int `yaml:"full_width" env-default:"1920" validate:"gt=0"`
	ThumbWidth  int `yaml:"thumb_width" env-default:"400" validate:"gt=0"`
	JPEGQuality int `yaml:"jpeg_quality" env-default:"90" validate:"min=1,max=100"`
}

type Upload struct {
	MaxFiles int `yaml:"max_files" env-default:"10" validate:"gt=0"`
}

type Session struct {
	Secret     string        `yaml:"secret" env:"SESSION_SECRET" env-default:"a_fallback_secret_key"`
	CookieName string        `yaml:"cookie_name" env-default:"gallery_session"`
	MaxAge     time.Duration `yaml:"max_age" env-default:"1h"`
}

type Admin struct {
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"photo-events"`
	GroupID string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"gallery-janitor"`
}

// Load reads the config from path, falling back to CONFIG_PATH and then to
// the environment alone.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Storage.Type == "s3" && cfg.Storage.S3.Bucket == "" {
		return nil, fmt.Errorf("invalid config: storage.s3.bucket is required for s3 storage")
	}

	return &cfg, nil
}

// SecureCookies reports whether session cookies must be sent over TLS only.
func (c *Config) SecureCookies() bool {
	return c.Env == EnvProd
}
