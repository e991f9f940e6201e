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

	// Chatbot specifics
	Engine EngineConfig
	Redis  RedisConfig
	Kakao  KakaoConfig

	// Request handling
	RateLimit  RateLimitConfig
	Validation ValidationConfig
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

// EngineConfig points at the recommendation engine service.
type EngineConfig struct {
	URL                  string
	TimeoutSeconds       int
	HealthTimeoutSeconds int
}

// RedisConfig holds the session store connection. An empty URL means
// sessions are kept in process memory.
type RedisConfig struct {
	URL        string
	TTLSeconds int
}

// KakaoConfig holds credentials for the Kakao push API. The webhook
// flow works without them; only direct sends need a key.
type KakaoConfig struct {
	APIKey string
	APIURL string
}

type RateLimitConfig struct {
	PerMin int
}

type ValidationConfig struct {
	DeniedTerms []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Recommendation engine
	cfg.Engine.URL = viper.GetString("engine.url")
	cfg.Engine.TimeoutSeconds = viper.GetInt("engine.timeout_seconds")
	cfg.Engine.HealthTimeoutSeconds = viper.GetInt("engine.health_timeout_seconds")
	if engineURL := viper.GetString("engine_url"); engineURL != "" {
		cfg.Engine.URL = engineURL
	}
	if cfg.Engine.URL == "" {
		return nil, fmt.Errorf("engine.url is required")
	}

	// Session store
	cfg.Redis.URL = viper.GetString("redis.url")
	cfg.Redis.TTLSeconds = viper.GetInt("redis.ttl_seconds")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	// Kakao push API
	cfg.Kakao.APIKey = viper.GetString("kakao.api_key")
	cfg.Kakao.APIURL = viper.GetString("kakao.api_url")
	if kakaoKey := viper.GetString("kakao_api_key"); kakaoKey != "" {
		cfg.Kakao.APIKey = kakaoKey
	}

	// Request handling
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Split denied terms since viper might not parse arrays seamlessly
	// from env
	terms := viper.GetStringSlice("validation.denied_terms")
	if rawTerms := viper.GetString("validation_denied_terms"); rawTerms != "" {
		terms = nil
		for _, t := range strings.Split(rawTerms, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				terms = append(terms, t)
			}
		}
	}
	cfg.Validation.DeniedTerms = terms

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

	viper.SetDefault("engine.url", "http://localhost:8000")
	viper.SetDefault("engine.timeout_seconds", 30)
	viper.SetDefault("engine.health_timeout_seconds", 5)

	viper.SetDefault("redis.ttl_seconds", 86400)

	viper.SetDefault("kakao.api_url", "https://kapi.kakao.com")

	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("validation.denied_terms", []string{"욕설", "비속어"})
}
