package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Session   SessionConfig
	Redis     RedisConfig
	DB        DBConfig
	Login     LoginConfig
	RateLimit RateLimitConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig servicio REST de la tienda (productos, ventas, usuarios, IA).
type BackendConfig struct {
	BaseURL     string
	AttachToken bool // adjunta "Authorization: Bearer <access>" cuando hay sesión
}

// Drivers soportados para el almacén de sesiones.
const (
	SessionDriverMemory   = "memory"
	SessionDriverRedis    = "redis"
	SessionDriverPostgres = "postgres"
)

// SessionConfig cookie firmada + almacén de sesiones.
type SessionConfig struct {
	Driver       string
	CookieName   string
	Secret       string // firma HS256 del id de sesión en la cookie
	CookieSecure bool
}

// RedisConfig conexión a Redis (URL tiene prioridad sobre Addr).
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// LoginConfig reglas del formulario de login.
type LoginConfig struct {
	MinPasswordLength int
}

// RateLimitConfig límite de intentos de login por IP (ventana fija).
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, SESSION_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

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

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "storemax-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:     strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://127.0.0.1:8000"), "/"),
			AttachToken: getBool(v, "BACKEND_ATTACH_TOKEN", true),
		},
		Session: SessionConfig{
			Driver:       strings.ToLower(getString(v, "SESSION_DRIVER", SessionDriverMemory)),
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "storemax_session"),
			Secret:       getString(v, "SESSION_SECRET", ""),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			URL:      getString(v, "REDIS_URL", ""),
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "storemax_web"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Login: LoginConfig{
			MinPasswordLength: getInt(v, "LOGIN_MIN_PASSWORD", 2),
		},
		RateLimit: RateLimitConfig{
			Enabled: getBool(v, "RATE_LIMIT_ENABLED", true),
			Limit:   getInt(v, "RATE_LIMIT", 20),
			Window:  time.Duration(getInt(v, "RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis, SessionDriverPostgres:
	default:
		return fmt.Errorf("config: SESSION_DRIVER desconocido %q", c.Session.Driver)
	}
	if c.Session.Secret == "" && c.App.Env == "production" {
		return fmt.Errorf("config: SESSION_SECRET es obligatorio en production")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL vacío")
	}
	if c.Login.MinPasswordLength < 1 {
		c.Login.MinPasswordLength = 1
	}
	return nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
