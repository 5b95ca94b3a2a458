package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del dashboard (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	API    APIConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración de la API remota de producción.
type APIConfig struct {
	BaseURL        string // ej. http://localhost:8000 (sin barra final)
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red de cada llamada remota.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HTTPConfig configuración del servidor HTTP del dashboard.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportConfig opciones del reporte PDF de stock.
type ReportConfig struct {
	Title string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// fromViper construye la configuración a partir de una instancia ya preparada.
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "production-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8000"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 10),
		},
		Report: ReportConfig{
			Title: getString(v, "REPORT_TITLE", "Stock Report"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido (%d)", cfg.HTTP.Port)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
