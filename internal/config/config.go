package config

import (
	"errors"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yumyai/bgctable/internal/util"
	"github.com/yumyai/bgctable/logger"
)

// Environment variables behind the flags, read after .env is loaded.
const (
	EnvInputDir         = "BGC_INPUT_DIR"
	EnvRegionsOut       = "BGC_REGIONS_OUT"
	EnvCandClustersOut  = "BGC_CAND_CLUSTERS_OUT"
	EnvProtoclustersOut = "BGC_PROTOCLUSTERS_OUT"
	EnvSQLite           = "BGC_SQLITE"
	EnvLogLevel         = "BGC_LOG_LEVEL"
)

// Defaults match the names the region summary has always used.
const (
	DefaultInputDir         = "LU_1kb"
	DefaultRegionsOut       = "regions_summary.csv"
	DefaultCandClustersOut  = "cand_clusters_summary.csv"
	DefaultProtoclustersOut = "protoclusters_summary.csv"
	DefaultLogLevel         = "info"
)

var ErrInputDirMissing = errors.New("input directory does not exist")

type Config struct {
	InputDir         string
	RegionsOut       string
	CandClustersOut  string
	ProtoclustersOut string
	SQLitePath       string
	LogLevel         string
}

// LoadDotEnv loads .env files into the process environment. A missing file is not an error.
func LoadDotEnv(filenames ...string) bool {
	if err := godotenv.Load(filenames...); err != nil {
		return false
	}
	return true
}

// Log writes the effective configuration at debug level.
func (c *Config) Log() {
	logger.Debug("Configuration",
		zap.String("input_dir", c.InputDir),
		zap.String("regions_out", c.RegionsOut),
		zap.String("cand_clusters_out", c.CandClustersOut),
		zap.String("protoclusters_out", c.ProtoclustersOut),
		zap.String("sqlite", c.SQLitePath),
		zap.String("log_level", c.LogLevel))
}

// CheckInputDir makes sure the region directory is there before any work starts.
func (c *Config) CheckInputDir() error {
	if !util.DirExists(c.InputDir) {
		return ErrInputDirMissing
	}
	return nil
}
