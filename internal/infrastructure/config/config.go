package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Swagger  SwaggerConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	URL         string // sqlite:///arquivo.db, caminho de arquivo ou postgres://...
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	SeedSample  bool
}

// JWTConfig configura o emissor de tokens do login simulado.
// O segredo padrão é fixo e serve apenas para desenvolvimento.
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type SwaggerConfig struct {
	Enabled bool
}

// Load carrega as configurações do ambiente, com .env opcional
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom carrega as configurações usando o arquivo .env informado.
// A ausência do arquivo não é erro; variáveis de ambiente têm precedência.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.BindEnv("DATABASE_URL", "DATABASE_URL", "DATABASE_URL_SQLITE"); err != nil {
		return nil, fmt.Errorf("error binding DATABASE_URL: %w", err)
	}

	env := v.GetString("ENV")
	if !v.IsSet("SWAGGER_ENABLED") {
		v.Set("SWAGGER_ENABLED", env != "production")
	}

	config := &Config{
		Env: env,
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			SeedSample:  v.GetBool("SEED_SAMPLE_DATA"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Swagger: SwaggerConfig{
			Enabled: v.GetBool("SWAGGER_ENABLED"),
		},
	}

	if config.JWT.AccessExpiry <= 0 {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY %q", v.GetString("JWT_ACCESS_EXPIRY"))
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5001")
	v.SetDefault("API_BASE_URL", "http://localhost:5001")
	v.SetDefault("DATABASE_URL", "sqlite:///docgestor.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("SEED_SAMPLE_DATA", false)
	v.SetDefault("JWT_SECRET", "super-secret-key-for-jwt-simulation")
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Addr retorna o endereço host:port para o servidor HTTP
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
