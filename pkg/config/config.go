package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Cache   CacheConfig
	Session SessionConfig
	Prefs   PrefsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP de la consola (BFF).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig configuración del backend REST remoto (órdenes, clientes, productos, bodega).
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheConfig ventanas del query cache: frescura y recolección por inactividad.
type CacheConfig struct {
	StaleSeconds int // datos más viejos se refrescan en el próximo acceso
	GCSeconds    int // entradas sin acceso durante esta ventana se eliminan
}

// StaleAfter ventana de frescura.
func (c CacheConfig) StaleAfter() time.Duration {
	return time.Duration(c.StaleSeconds) * time.Second
}

// GCAfter ventana de recolección por inactividad.
func (c CacheConfig) GCAfter() time.Duration {
	return time.Duration(c.GCSeconds) * time.Second
}

// SessionConfig configuración del almacén local del token de sesión.
type SessionConfig struct {
	TokenPath string // archivo donde se persiste el bearer token
}

// PrefsConfig configuración de preferencias persistidas (anchos de columna).
// FlushMillis es la ventana del write-behind: una ráfaga de cambios coalesce
// en una sola escritura a disco.
type PrefsConfig struct {
	Path        string
	FlushMillis int
}

// Flush devuelve la ventana de write-behind.
func (c PrefsConfig) Flush() time.Duration {
	return time.Duration(c.FlushMillis) * time.Millisecond
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
			Name: getString(v, "APP_NAME", "moda-backoffice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Cache: CacheConfig{
			StaleSeconds: getInt(v, "CACHE_STALE_SECONDS", 300),
			GCSeconds:    getInt(v, "CACHE_GC_SECONDS", 600),
		},
		Session: SessionConfig{
			TokenPath: getString(v, "SESSION_TOKEN_PATH", ".session/token"),
		},
		Prefs: PrefsConfig{
			Path:        getString(v, "PREFS_PATH", ".session/prefs.json"),
			FlushMillis: getInt(v, "PREFS_FLUSH_MS", 300),
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
