package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"coursetable/internal/model"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Solver model.Config
	IO     IOConfig
	Log    LogConfig
}

// IOConfig locates the input tables and names the report files.
type IOConfig struct {
	DataDir      string
	InputFile    string
	SolutionFile string
	FailuresFile string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Solver = model.Config{
		AllowUnqualifiedFallback: v.GetBool("ALLOW_UNQUALIFIED_FALLBACK"),
		ShortTutorialMaxMinutes:  v.GetInt("SHORT_TUTORIAL_MAX_MINUTES"),
		LongLectureMinMinutes:    v.GetInt("LONG_LECTURE_MIN_MINUTES"),
		CapacityRelax:            v.GetFloat64("CAPACITY_RELAX"),
	}

	cfg.IO = IOConfig{
		DataDir:      v.GetString("DATA_DIR"),
		InputFile:    v.GetString("INPUT_FILE"),
		SolutionFile: v.GetString("SOLUTION_FILE"),
		FailuresFile: v.GetString("FAILURES_FILE"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	if cfg.Solver.CapacityRelax < 0 || cfg.Solver.CapacityRelax >= 1 {
		return nil, fmt.Errorf("CAPACITY_RELAX must be in [0,1), got %v", cfg.Solver.CapacityRelax)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()

	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("ALLOW_UNQUALIFIED_FALLBACK", defaults.AllowUnqualifiedFallback)
	v.SetDefault("SHORT_TUTORIAL_MAX_MINUTES", defaults.ShortTutorialMaxMinutes)
	v.SetDefault("LONG_LECTURE_MIN_MINUTES", defaults.LongLectureMinMinutes)
	v.SetDefault("CAPACITY_RELAX", defaults.CapacityRelax)

	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("INPUT_FILE", "")
	v.SetDefault("SOLUTION_FILE", "timetable_solution.csv")
	v.SetDefault("FAILURES_FILE", "timetable_failures.csv")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
