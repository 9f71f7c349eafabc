package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/book-network/pkg/auth"
	"github.com/Astemirdum/book-network/pkg/kafka"
	"github.com/Astemirdum/book-network/pkg/logger"
	"github.com/Astemirdum/book-network/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8088"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

// Breaker guards the event publisher.
type Breaker struct {
	RecordLength     int           `yaml:"recordLength" envconfig:"CB_RECORD_LENGTH" default:"10"`
	Timeout          time.Duration `yaml:"timeout" envconfig:"CB_TIMEOUT" default:"30s"`
	Percentile       float64       `yaml:"percentile" envconfig:"CB_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `yaml:"recoveryRequests" envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

// Bootstrap lists the roles that must exist before the server accepts traffic.
type Bootstrap struct {
	Roles []string `yaml:"roles" envconfig:"BOOTSTRAP_ROLES" default:"USER"`
}

type Config struct {
	Server    HTTPServer   `yaml:"server"`
	Database  postgres.DB  `yaml:"db"`
	Kafka     kafka.Config `yaml:"kafka"`
	Breaker   Breaker      `yaml:"breaker"`
	Auth      auth.Config  `yaml:"auth"`
	Bootstrap Bootstrap    `yaml:"bootstrap"`
	Log       logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options win over the environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
