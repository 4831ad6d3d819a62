package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	AI      AIConfig
	Profile ProfileConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// RedisConfig configuración del almacén clave-valor.
// Key es la clave fija bajo la cual se persiste la colección completa de facturas.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// AIConfig configuración del colaborador de generación de texto (Gemini).
// Si APIKey está vacío, los casos de uso degradan a los textos de respaldo.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// ProfileConfig identidad estática del freelancer (cabecera de facturación).
// Solo se consume para presentación; el core nunca la muta.
type ProfileConfig struct {
	Name         string
	Title        string
	Email        string
	BusinessName string
	LogoURL      string
	Website      string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, REDIS_ADDR, GEMINI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invoicer-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Key:      getString(v, "REDIS_INVOICES_KEY", "invoicer:invoices"),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Profile: ProfileConfig{
			Name:         getString(v, "PROFILE_NAME", "Kelechi Nwachukwu"),
			Title:        getString(v, "PROFILE_TITLE", "Freelance Full Stack Developer"),
			Email:        getString(v, "PROFILE_EMAIL", ""),
			BusinessName: getString(v, "PROFILE_BUSINESS_NAME", "Kelechi Nwachukwu"),
			LogoURL:      getString(v, "PROFILE_LOGO_URL", ""),
			Website:      getString(v, "PROFILE_WEBSITE", ""),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
