package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/edenbay/bookstore-service/pkg/kafka"
	"github.com/edenbay/bookstore-service/pkg/logger"
	"github.com/edenbay/bookstore-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"5001"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server      HTTPServer   `yaml:"server"`
	Database    postgres.DB  `yaml:"db"`
	Kafka       kafka.Config `yaml:"kafka"`
	Log         logger.Log   `yaml:"log"`
	AllowOrigin string       `yaml:"allowOrigin" envconfig:"ALLOW_ORIGIN" default:"http://localhost:3000"`
	JWTKey      string       `yaml:"jwtKey" envconfig:"JWT_KEY" default:"bookstore-dev-key"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
