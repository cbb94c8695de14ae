package client

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config configura o cliente da API e o cache de consultas
type Config struct {
	BaseURL  string        `env:"ACADEMIA_API_URL" envDefault:"http://localhost:8080/api/v1"`
	Token    string        `env:"ACADEMIA_API_TOKEN"`
	Language string        `env:"ACADEMIA_API_LANGUAGE" envDefault:"pt-BR"`
	Timeout  time.Duration `env:"ACADEMIA_API_TIMEOUT" envDefault:"10s"`

	// CacheRedisURL ativa o RedisStore; vazio usa o cache em memória
	CacheRedisURL string        `env:"ACADEMIA_CACHE_REDIS_URL"`
	CachePrefix   string        `env:"ACADEMIA_CACHE_PREFIX" envDefault:"academia:query"`
	CacheTTL      time.Duration `env:"ACADEMIA_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig lê a configuração das variáveis de ambiente
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
