package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Scoring  ScoringConfig
	AI       AIConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type DatabaseConfig struct {
	DBHost              string
	DBPort              string
	DBName              string
	DBUser              string
	DBPassword          string
	DBSSLMode           string
	PoolMaxConns        int32
	PoolMaxConnLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// ScoringConfig exposes the recommendation tunables. Defaults reproduce the
// production weighting; the keyword lists are deployment data, not logic.
type ScoringConfig struct {
	DomainBonusKeywords   []string
	DomainBonusRate       float64
	RecencyDecayLambda    float64
	DefaultRecencyWeight  float64
	TransferableThreshold float64
	MinTeamSize           int
	MaxDomainCandidates   int
}

type AIConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	ExplainTimeout time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("LOG_LEVEL", "info"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST", "localhost"),
		DBPort:              opt("DB_PORT", "5432"),
		DBName:              opt("DB_NAME", ""),
		DBUser:              opt("DB_USER", ""),
		DBPassword:          opt("DB_PASSWORD", ""),
		DBSSLMode:           opt("DB_SSL_MODE", "disable"),
		PoolMaxConns:        int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMaxConnLifetime: optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	cfg.Scoring = ScoringConfig{
		DomainBonusKeywords:   optCSV("SCORING_DOMAIN_BONUS_KEYWORDS", []string{"finance", "banking", "금융", "은행"}),
		DomainBonusRate:       optFloat("SCORING_DOMAIN_BONUS_RATE", 0.3),
		RecencyDecayLambda:    optFloat("SCORING_RECENCY_DECAY_LAMBDA", 0.3),
		DefaultRecencyWeight:  optFloat("SCORING_DEFAULT_RECENCY_WEIGHT", 0.5),
		TransferableThreshold: optFloat("SCORING_TRANSFERABLE_THRESHOLD", 0.3),
		MinTeamSize:           optInt("SCORING_MIN_TEAM_SIZE", 5),
		MaxDomainCandidates:   optInt("SCORING_MAX_DOMAIN_CANDIDATES", 8),
	}

	cfg.AI = AIConfig{
		GeminiAPIKey:   opt("GEMINI_API_KEY", ""),
		GeminiModel:    opt("GEMINI_MODEL", ""),
		ExplainTimeout: optDuration("AI_EXPLAIN_TIMEOUT", 5*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func optFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func optCSV(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
