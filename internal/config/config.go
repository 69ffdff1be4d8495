package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppVersion is recorded in every event row and shown by the version command.
const AppVersion = "v1.0.0"

// Config controls runtime paths and study pacing.
type Config struct {
	DataDir             string        `env:"TRIAGELAB_DATA_DIR"`
	DBPath              string        `env:"TRIAGELAB_DB"`
	PackPath            string        `env:"TRIAGELAB_PACK"            envDefault:"config/study_content_pack.yaml"`
	WashoutDuration     time.Duration `env:"TRIAGELAB_WASHOUT"         envDefault:"15s"`
	ShuffleWithinBlock  bool          `env:"TRIAGELAB_SHUFFLE_IN_BLOCK" envDefault:"true"`
}

// LoadConfigFromEnv returns configuration with defaults applied.
// DataDir defaults to ~/.triagelab; DBPath and the workload-survey log
// default to paths under DataDir.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = filepath.Join(home, ".triagelab")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "triagelab.db")
	}
	return cfg, nil
}

// SurveyLogPath is the shared, cross-session workload-survey log file.
func (c Config) SurveyLogPath() string {
	return filepath.Join(c.DataDir, "workload_surveys.csv")
}

// SessionLogPath builds the per-session event log path. The timestamp
// component keeps logs from distinct attempts with recycled ids apart.
func (c Config) SessionLogPath(sessionID, timestamp string) string {
	return filepath.Join(c.DataDir, "logs_"+sessionID+"_"+timestamp+".csv")
}
