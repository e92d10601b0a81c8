package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	State   StateConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StateConfig rutas de los blobs persistidos. Por defecto bajo
// ~/.config/nautica (o el directorio actual si no se resuelve el home).
type StateConfig struct {
	DataFile    string
	SessionFile string
}

// SessionConfig parámetros de la sesión.
type SessionConfig struct {
	Secret     string // firma HS256 del blob de sesión
	TTLMinutes int    // ventana de inactividad; por defecto 10
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente un
// archivo .env en el directorio actual). Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, NAUTICA_DATA_FILE, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	stateDir := defaultStateDir()
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "production"),
			Name:     getString(v, "APP_NAME", "nautica-cli"),
			LogLevel: getString(v, "LOG_LEVEL", "warn"),
		},
		State: StateConfig{
			DataFile:    getString(v, "NAUTICA_DATA_FILE", filepath.Join(stateDir, "data.json")),
			SessionFile: getString(v, "NAUTICA_SESSION_FILE", filepath.Join(stateDir, "session.jwt")),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", "nautica-local-session"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 10),
			Issuer:     getString(v, "SESSION_ISSUER", "nautica-cli"),
		},
	}
	return cfg, nil
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "nautica")
	}
	return "."
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
