package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Storage  string `yaml:"storage" env:"TICTACTOE_STORAGE" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"TICTACTOE_REDIS_SESSION_TTL" env-default:"24h"`
}

type Game struct {
	Opponent       string `yaml:"opponent" env:"TICTACTOE_OPPONENT" env-default:"minimax"`
	ComputerMark   string `yaml:"computer-mark" env:"TICTACTOE_COMPUTER_MARK" env-default:"O"`
	FirstTurn      string `yaml:"first-turn" env:"TICTACTOE_FIRST_TURN" env-default:"X"`
	ParallelSearch bool   `yaml:"parallel-search" env:"TICTACTOE_PARALLEL_SEARCH" env-default:"false"`
}

// Load reads the YAML file at path with environment overrides. A missing file is not an
// error: defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
