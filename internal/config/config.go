package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lennart/cinemood/internal/domain"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Affect    AffectConfig    `mapstructure:"affect"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite or postgres
	Path            string        `mapstructure:"path"`   // sqlite file path
	DSN             string        `mapstructure:"dsn"`    // postgres connection string
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type CacheConfig struct {
	Backend string `mapstructure:"backend"` // fs or s3
	Dir     string `mapstructure:"dir"`     // fs backend directory

	Endpoint  string `mapstructure:"endpoint"` // s3 backend settings
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
}

type EmbeddingConfig struct {
	Provider   string `mapstructure:"provider"`
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Dimensions int    `mapstructure:"dimensions"`
	BatchSize  int    `mapstructure:"batch_size"`
}

type AffectConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	MaxChars int    `mapstructure:"max_chars"`
}

type RecommendConfig struct {
	Weights         domain.SimilarityWeights `mapstructure:"weights"`
	TopK            int                      `mapstructure:"top_k"`
	PopularityFloor float64                  `mapstructure:"popularity_floor"`
	RatingFloor     float64                  `mapstructure:"rating_floor"`
	CandidateCap    int                      `mapstructure:"candidate_cap"`
	Lexical         LexicalConfig            `mapstructure:"lexical"`
}

type LexicalConfig struct {
	MaxFeatures int     `mapstructure:"max_features"`
	MinDF       int     `mapstructure:"min_df"`
	MaxDFRatio  float64 `mapstructure:"max_df_ratio"`
}

type IngestConfig struct {
	CSVPath   string `mapstructure:"csv_path"`
	BatchSize int    `mapstructure:"batch_size"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/movies.db")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("cache.backend", "fs")
	v.SetDefault("cache.dir", "./cache")
	v.SetDefault("cache.use_ssl", false)
	v.SetDefault("cache.bucket", "cinemood-embeddings")
	v.SetDefault("embedding.provider", "jina")
	v.SetDefault("embedding.model", "jina-embeddings-v3")
	v.SetDefault("embedding.base_url", "https://api.jina.ai/v1")
	v.SetDefault("embedding.dimensions", 768)
	v.SetDefault("embedding.batch_size", 32)
	v.SetDefault("affect.provider", "huggingface")
	v.SetDefault("affect.model", "j-hartmann/emotion-english-distilroberta-base")
	v.SetDefault("affect.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("affect.max_chars", 512)
	v.SetDefault("recommend.top_k", 4)
	v.SetDefault("recommend.popularity_floor", 10.0)
	v.SetDefault("recommend.rating_floor", 0.5)
	v.SetDefault("recommend.candidate_cap", 1000)
	v.SetDefault("recommend.weights.semantic", 0.4)
	v.SetDefault("recommend.weights.lexical", 0.4)
	v.SetDefault("recommend.weights.affect", 0.15)
	v.SetDefault("recommend.weights.popularity", 0.025)
	v.SetDefault("recommend.weights.rating", 0.025)
	v.SetDefault("recommend.lexical.max_features", 5000)
	v.SetDefault("recommend.lexical.min_df", 2)
	v.SetDefault("recommend.lexical.max_df_ratio", 0.95)
	v.SetDefault("ingest.csv_path", "./data/movies_dataset_preprocessed.csv")
	v.SetDefault("ingest.batch_size", 500)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("database.dsn", "DATABASE_DSN")
	v.BindEnv("cache.endpoint", "CACHE_S3_ENDPOINT")
	v.BindEnv("cache.access_key", "CACHE_S3_ACCESS_KEY")
	v.BindEnv("cache.secret_key", "CACHE_S3_SECRET_KEY")
	v.BindEnv("embedding.api_key", "EMBEDDING_API_KEY")
	v.BindEnv("affect.api_key", "AFFECT_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
