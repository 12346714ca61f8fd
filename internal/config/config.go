package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the assessment API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Providers ProvidersConfig `yaml:"providers"`
	Interview InterviewConfig `yaml:"interview"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Probes    ProbesConfig    `yaml:"probes"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis (default)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ProvidersConfig holds model provider settings.
type ProvidersConfig struct {
	OpenAI OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig holds OpenAI-compatible provider settings.
type OpenAIConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	ChatModel      string `yaml:"chat_model"`
	EmbeddingModel string `yaml:"embedding_model"`
	TimeoutSec     int    `yaml:"timeout_sec"`
}

// InterviewConfig holds interview session settings.
type InterviewConfig struct {
	MaxTurns      int `yaml:"max_turns"`
	MaxReplyBytes int `yaml:"max_reply_bytes"`
	HistoryWindow int `yaml:"history_window"`
	SessionTTLSec int `yaml:"session_ttl_sec"` // checkpoint TTL; 0 = no expiry
}

// ScoringConfig holds trait scoring settings.
type ScoringConfig struct {
	LowThreshold       float64 `yaml:"low_threshold"`
	HighThreshold      float64 `yaml:"high_threshold"`
	SimilarityMinWords int     `yaml:"similarity_min_words"`
	RunRule            *bool   `yaml:"run_rule"`
	RunSimilarity      *bool   `yaml:"run_similarity"`
	RunJudgment        *bool   `yaml:"run_judgment"`
	ScoreFacets        bool    `yaml:"score_facets"`
}

// ProbesConfig holds probe pool settings.
type ProbesConfig struct {
	Driver string `yaml:"driver"` // builtin, redis (default: builtin)
}

// RuleEnabled reports whether the rule-based scorer should run (default true).
func (s ScoringConfig) RuleEnabled() bool { return s.RunRule == nil || *s.RunRule }

// SimilarityEnabled reports whether the similarity scorer should run (default true).
func (s ScoringConfig) SimilarityEnabled() bool { return s.RunSimilarity == nil || *s.RunSimilarity }

// JudgmentEnabled reports whether the LLM judgment scorer should run (default true).
func (s ScoringConfig) JudgmentEnabled() bool { return s.RunJudgment == nil || *s.RunJudgment }

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Providers.OpenAI.ChatModel == "" {
		c.Providers.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.Providers.OpenAI.EmbeddingModel == "" {
		c.Providers.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if c.Providers.OpenAI.TimeoutSec <= 0 {
		c.Providers.OpenAI.TimeoutSec = 60
	}
	if c.Interview.MaxTurns <= 0 {
		c.Interview.MaxTurns = 10
	}
	if c.Interview.MaxReplyBytes <= 0 {
		c.Interview.MaxReplyBytes = 16 * 1024
	}
	if c.Interview.HistoryWindow <= 0 {
		c.Interview.HistoryWindow = 6
	}
	if c.Interview.SessionTTLSec < 0 {
		c.Interview.SessionTTLSec = 0
	}
	if c.Scoring.LowThreshold <= 0 {
		c.Scoring.LowThreshold = 2.3
	}
	if c.Scoring.HighThreshold <= 0 {
		c.Scoring.HighThreshold = 3.6
	}
	if c.Scoring.SimilarityMinWords <= 0 {
		c.Scoring.SimilarityMinWords = 15
	}
	if c.Probes.Driver == "" {
		c.Probes.Driver = "builtin"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Database.Driver != "redis" {
		return fmt.Errorf("database.driver must be \"redis\", got %q", c.Database.Driver)
	}
	if c.Scoring.LowThreshold >= c.Scoring.HighThreshold {
		return fmt.Errorf("scoring.low_threshold (%.2f) must be below scoring.high_threshold (%.2f)",
			c.Scoring.LowThreshold, c.Scoring.HighThreshold)
	}
	switch c.Probes.Driver {
	case "builtin", "redis":
		// ok
	default:
		return fmt.Errorf("probes.driver must be \"builtin\" or \"redis\", got %q", c.Probes.Driver)
	}
	needsProvider := c.Scoring.SimilarityEnabled() || c.Scoring.JudgmentEnabled()
	if needsProvider && c.Providers.OpenAI.APIKey == "" {
		return fmt.Errorf("providers.openai.api_key is required when similarity or judgment scoring is enabled")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
