package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"wordbow/internal/game"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Game     GameConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
	Bot      BotConfig
	Server   ServerConfig

	// Profile enables pkg/profile in the terminal client: "cpu" or "mem"
	Profile string
}

// GameConfig holds round timing and the initial field size
type GameConfig struct {
	RoundSeconds      int
	TickInterval      time.Duration
	SpawnInterval     time.Duration
	CountdownInterval time.Duration
	FieldWidth        float64
	FieldHeight       float64
}

// DatasetConfig selects where the word list comes from
type DatasetConfig struct {
	Source string
	File   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	Migrations string
}

// BotConfig holds the curation bot credentials
type BotConfig struct {
	Token    string
	Password string
}

// ServerConfig holds the websocket server settings
type ServerConfig struct {
	Addr           string
	BroadcastEvery int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var err error
	cfg := &Config{
		Dataset: DatasetConfig{
			Source: getEnv("DATASET_SOURCE", SourceFile),
			File:   getEnv("DATASET_FILE", "data.json"),
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			Name:       getEnv("DB_NAME", "wordbow"),
			User:       getEnv("DB_USER", "wordbow"),
			Password:   os.Getenv("DB_PASSWORD"),
			Migrations: getEnv("MIGRATIONS_PATH", "file://migrations"),
		},
		Bot: BotConfig{
			Token:    os.Getenv("BOT_TOKEN"),
			Password: os.Getenv("BOT_PASSWORD"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Profile: os.Getenv("PROFILE"),
	}

	g := &cfg.Game
	if g.RoundSeconds, err = getEnvInt("ROUND_SECONDS", 60); err != nil {
		return nil, err
	}
	if g.TickInterval, err = getEnvMillis("TICK_MS", 20); err != nil {
		return nil, err
	}
	if g.SpawnInterval, err = getEnvMillis("SPAWN_MS", 2000); err != nil {
		return nil, err
	}
	if g.CountdownInterval, err = getEnvMillis("COUNTDOWN_MS", 1000); err != nil {
		return nil, err
	}
	width, err := getEnvInt("FIELD_WIDTH", game.DefaultFieldWidth)
	if err != nil {
		return nil, err
	}
	height, err := getEnvInt("FIELD_HEIGHT", game.DefaultFieldHeight)
	if err != nil {
		return nil, err
	}
	g.FieldWidth, g.FieldHeight = float64(width), float64(height)

	if cfg.Server.BroadcastEvery, err = getEnvInt("BROADCAST_EVERY", 2); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	g := c.Game
	if g.RoundSeconds <= 0 {
		return fmt.Errorf("ROUND_SECONDS must be positive")
	}
	if g.TickInterval <= 0 {
		return fmt.Errorf("TICK_MS must be positive")
	}
	if g.SpawnInterval < g.TickInterval || g.CountdownInterval < g.TickInterval {
		return fmt.Errorf("SPAWN_MS and COUNTDOWN_MS must not be shorter than TICK_MS")
	}
	if g.FieldWidth <= 0 || g.FieldHeight <= 0 {
		return fmt.Errorf("FIELD_WIDTH and FIELD_HEIGHT must be positive")
	}
	if c.Server.BroadcastEvery <= 0 {
		return fmt.Errorf("BROADCAST_EVERY must be positive")
	}
	switch c.Dataset.Source {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}
	if c.Profile != "" && c.Profile != "cpu" && c.Profile != "mem" {
		return fmt.Errorf("unknown PROFILE %q", c.Profile)
	}
	return nil
}

// ValidateBot checks the settings only the curation bot needs
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Bot.Password == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return c.ValidateDatabase()
}

// ValidateDatabase checks the settings needed to reach Postgres
func (c *Config) ValidateDatabase() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// UsesDatabase reports whether the game reads its dataset from Postgres
func (c *Config) UsesDatabase() bool {
	return c.Dataset.Source == SourcePostgres
}

// Tuning converts the game settings to engine timing
func (c *Config) Tuning() game.Tuning {
	return game.Tuning{
		TickInterval:      c.Game.TickInterval,
		SpawnInterval:     c.Game.SpawnInterval,
		CountdownInterval: c.Game.CountdownInterval,
		RoundSeconds:      c.Game.RoundSeconds,
	}
}

// Field returns the initial play field
func (c *Config) Field() game.Field {
	return game.Field{Width: c.Game.FieldWidth, Height: c.Game.FieldHeight}
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvMillis(key string, defaultValue int) (time.Duration, error) {
	n, err := getEnvInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
