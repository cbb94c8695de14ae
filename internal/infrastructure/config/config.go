package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Reports  ReportsConfig
}

type ServerConfig struct {
	Port       string
	Host       string
	BaseURL    string // URL base da API para construir URIs RFC 7807
	LocalesDir string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RabbitMQConfig struct {
	URL   string
	Queue string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry string
}

// AdminConfig alimenta o script de criação do administrador
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type ReportsConfig struct {
	DashboardXLSXPath string
}

// envAliases lista as variáveis aceitas para cada chave, na ordem de precedência
var envAliases = map[string][]string{
	"env":                  {"ENV", "NODE_ENV"},
	"server.port":          {"PORT"},
	"server.host":          {"HOST"},
	"server.base_url":      {"API_BASE_URL"},
	"server.locales_dir":   {"LOCALES_DIR"},
	"db.host":              {"DB_HOST"},
	"db.port":              {"DB_PORT"},
	"db.user":              {"DB_USER", "DB_USERNAME"},
	"db.password":          {"DB_PASSWORD", "DB_PASS"},
	"db.name":              {"DB_NAME", "DB_DATABASE"},
	"db.ssl_mode":          {"DB_SSL_MODE"},
	"db.max_conns":         {"DB_MAX_CONNS"},
	"db.min_conns":         {"DB_MIN_CONNS"},
	"db.max_idle_time":     {"DB_MAX_IDLE_TIME"},
	"rabbitmq.url":         {"RABBITMQ_URL", "AMQP_URL"},
	"rabbitmq.queue":       {"RABBITMQ_NOTIFICATIONS_QUEUE"},
	"jwt.secret":           {"JWT_SECRET"},
	"jwt.access_expiry":    {"JWT_ACCESS_EXPIRY"},
	"admin.name":           {"ADMIN_NAME"},
	"admin.email":          {"ADMIN_EMAIL"},
	"admin.password":       {"ADMIN_PASSWORD"},
	"logging.level":        {"LOG_LEVEL"},
	"cors.allowed_origins": {"CORS_ALLOWED_ORIGINS"},
	"reports.xlsx_path":    {"DASHBOARD_XLSX_PATH"},
}

var defaults = map[string]any{
	"env":                  "development",
	"server.port":          "8080",
	"server.host":          "0.0.0.0",
	"server.base_url":      "http://localhost:8080",
	"db.host":              "localhost",
	"db.port":              5432,
	"db.user":              "postgres",
	"db.name":              "academia",
	"db.ssl_mode":          "disable",
	"db.max_conns":         10,
	"db.min_conns":         2,
	"db.max_idle_time":     300,
	"rabbitmq.queue":       "notifications.created",
	"jwt.access_expiry":    "24h",
	"admin.name":           "Administrador",
	"admin.email":          "admin@academia.com",
	"admin.password":       "admin123",
	"logging.level":        "info",
	"cors.allowed_origins": "http://localhost:5173",
}

// Load carrega as configurações do ambiente, usando o arquivo .env quando existir.
// Variáveis já definidas no ambiente têm precedência sobre o .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:       v.GetString("server.port"),
			Host:       v.GetString("server.host"),
			BaseURL:    v.GetString("server.base_url"),
			LocalesDir: v.GetString("server.locales_dir"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("db.host"),
			Port:        v.GetInt("db.port"),
			User:        v.GetString("db.user"),
			Password:    v.GetString("db.password"),
			DBName:      v.GetString("db.name"),
			SSLMode:     v.GetString("db.ssl_mode"),
			MaxConns:    v.GetInt("db.max_conns"),
			MinConns:    v.GetInt("db.min_conns"),
			MaxIdleTime: v.GetInt("db.max_idle_time"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("rabbitmq.url"),
			Queue: v.GetString("rabbitmq.queue"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("jwt.secret"),
			AccessExpiry: v.GetString("jwt.access_expiry"),
		},
		Admin: AdminConfig{
			Name:     v.GetString("admin.name"),
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("logging.level"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("cors.allowed_origins"),
		},
		Reports: ReportsConfig{
			DashboardXLSXPath: v.GetString("reports.xlsx_path"),
		},
	}

	return config, nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL retorna a connection string no formato postgres:// (usada pelo lib/pq)
func (d *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// Masked retorna uma descrição da conexão sem expor a senha
func (d *DatabaseConfig) Masked() string {
	password := ""
	if d.Password != "" {
		password = strings.Repeat("*", 8)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, password, d.DBName, d.SSLMode,
	)
}
