package appconfig

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// AppConfig holds run defaults read from the environment. Command-line
// flags override these.
type AppConfig struct {
	Solver       string  `env:"NASHLEARN_SOLVER" env-default:"hedge" env-description:"Solver: hedge or fictitious"`
	Preset       string  `env:"NASHLEARN_PRESET" env-default:"rock-paper-scissors" env-description:"Preset game used when no matrix file is given"`
	LearningRate float64 `env:"NASHLEARN_LR" env-default:"0.1" env-description:"Hedge learning rate"`
	Iterations   int     `env:"NASHLEARN_ITERATIONS" env-default:"100000" env-description:"Number of iterations"`
	LogInterval  int     `env:"NASHLEARN_LOG_INTERVAL" env-default:"5000" env-description:"Iterations between checkpoints"`
	Seed         int64   `env:"NASHLEARN_SEED" env-default:"0" env-description:"Random seed"`
	Mixing       float64 `env:"NASHLEARN_MIXING" env-default:"0" env-description:"Exploration probability for fictitious play"`
}

// Load environment variables to AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	return cfg, nil
}

// Usage describes the environment variables understood by LoadAppConfig.
func Usage() (string, error) {
	return cleanenv.GetDescription(&AppConfig{}, nil)
}
