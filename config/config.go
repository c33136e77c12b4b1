package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Scoring and routing tables
	Engine EngineConfig

	// Request throttling
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// EngineConfig overrides the built-in scoring and routing tables. Empty
// sections keep the defaults compiled into the engine.
type EngineConfig struct {
	KeywordRoutes     []KeywordRouteConfig
	OriginatorWeights []OriginatorWeightConfig
	StatusWeights     map[string]float64
}

type KeywordRouteConfig struct {
	Keyword   string
	OrgUnitID string
}

type OriginatorWeightConfig struct {
	Pattern string
	Weight  float64
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Engine table overrides
	if viper.IsSet("engine.keyword_routes") {
		routesRaw := viper.Get("engine.keyword_routes")
		if routesList, ok := routesRaw.([]interface{}); ok {
			for _, r := range routesList {
				if routeMap, ok := r.(map[string]interface{}); ok {
					route := KeywordRouteConfig{
						Keyword:   getStringFromMap(routeMap, "keyword"),
						OrgUnitID: getStringFromMap(routeMap, "org_unit_id"),
					}
					if route.Keyword == "" || route.OrgUnitID == "" {
						return nil, fmt.Errorf("engine.keyword_routes entries need keyword and org_unit_id")
					}
					cfg.Engine.KeywordRoutes = append(cfg.Engine.KeywordRoutes, route)
				}
			}
		}
	}

	if viper.IsSet("engine.originator_weights") {
		weightsRaw := viper.Get("engine.originator_weights")
		if weightsList, ok := weightsRaw.([]interface{}); ok {
			for _, w := range weightsList {
				if weightMap, ok := w.(map[string]interface{}); ok {
					weight := OriginatorWeightConfig{
						Pattern: getStringFromMap(weightMap, "pattern"),
						Weight:  getFloatFromMap(weightMap, "weight"),
					}
					if weight.Pattern == "" {
						return nil, fmt.Errorf("engine.originator_weights entries need a pattern")
					}
					cfg.Engine.OriginatorWeights = append(cfg.Engine.OriginatorWeights, weight)
				}
			}
		}
	}

	if viper.IsSet("engine.status_weights") {
		cfg.Engine.StatusWeights = map[string]float64{}
		for status, weight := range viper.GetStringMap("engine.status_weights") {
			cfg.Engine.StatusWeights[status] = toFloat(weight)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "./data/missionmind.db")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok {
		return toFloat(val)
	}
	return 0
}

func toFloat(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
