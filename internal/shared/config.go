package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Every field can be overridden by a FYYUR_* environment variable, see [Config.ApplyEnv].
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Trivia   TriviaConfig   `toml:"trivia"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path" env:"FYYUR_DATABASE_PATH"`
	MaxOpenConns int    `toml:"max_open_conns" env:"FYYUR_DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"FYYUR_DATABASE_MAX_IDLE_CONNS"`
}

// ServerConfig contains HTTP server settings for both applications.
type ServerConfig struct {
	Host       string `toml:"host" env:"FYYUR_SERVER_HOST"`
	FyyurPort  int    `toml:"fyyur_port" env:"FYYUR_SERVER_FYYUR_PORT"`
	TriviaPort int    `toml:"trivia_port" env:"FYYUR_SERVER_TRIVIA_PORT"`
}

// TriviaConfig contains trivia API and quiz player settings.
type TriviaConfig struct {
	PageSize         int    `toml:"page_size" env:"FYYUR_TRIVIA_PAGE_SIZE"`
	QuestionsPerPlay int    `toml:"questions_per_play" env:"FYYUR_TRIVIA_QUESTIONS_PER_PLAY"`
	URL              string `toml:"url" env:"FYYUR_TRIVIA_URL"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level" env:"FYYUR_LOG_LEVEL"`
}

// FyyurAddr returns the listen address of the directory application.
func (c *Config) FyyurAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.FyyurPort)
}

// TriviaAddr returns the listen address of the trivia API.
func (c *Config) TriviaAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.TriviaPort)
}

// Validate reports settings that would make the servers unusable.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is empty", ErrInvalidConfig)
	}
	if c.Trivia.PageSize < 1 {
		return fmt.Errorf("%w: trivia.page_size must be positive", ErrInvalidConfig)
	}
	if c.Trivia.QuestionsPerPlay < 1 {
		return fmt.Errorf("%w: trivia.questions_per_play must be positive", ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv loads a .env file from the working directory when present and then
// overrides fields from FYYUR_* environment variables.
//
// Fields whose variables are unset keep the values already in the struct.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
