// regionsummary summarises the region, candidate cluster and protocluster features of
// every antiSMASH region GenBank file in a directory into three CSV tables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/bgctable/internal/config"
	"github.com/yumyai/bgctable/logger"
	mydb "github.com/yumyai/bgctable/pkg/db"
	"github.com/yumyai/bgctable/pkg/handler"
	"github.com/yumyai/bgctable/pkg/handler/request"
	"github.com/yumyai/bgctable/pkg/model"
)

const VERSION = "0.1.0"

func main() {
	// Default logger until the flags are parsed
	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Fatal("regionsummary failed", zap.Error(err))
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {

	// .env has to be in the environment before kingpin reads Envar defaults.
	dotenv := config.LoadDotEnv()

	app := kingpin.New("regionsummary", "Summarise antiSMASH region GenBank files.")
	app.Version(VERSION)

	cfg := &config.Config{}
	app.Flag("input-dir", "Directory with the *region*.gbk files.").
		Envar(config.EnvInputDir).Default(config.DefaultInputDir).StringVar(&cfg.InputDir)
	app.Flag("regions-out", "Region summary CSV.").
		Envar(config.EnvRegionsOut).Default(config.DefaultRegionsOut).StringVar(&cfg.RegionsOut)
	app.Flag("cand-clusters-out", "Candidate cluster summary CSV.").
		Envar(config.EnvCandClustersOut).Default(config.DefaultCandClustersOut).StringVar(&cfg.CandClustersOut)
	app.Flag("protoclusters-out", "Protocluster summary CSV.").
		Envar(config.EnvProtoclustersOut).Default(config.DefaultProtoclustersOut).StringVar(&cfg.ProtoclustersOut)
	candType := app.Flag("candidate-cluster-type", "Feature type of candidate clusters (antiSMASH GenBank uses cand_cluster).").
		Default(string(model.KindCandidateCluster)).String()
	app.Flag("sqlite", "Also export the summaries into this SQLite database.").
		Envar(config.EnvSQLite).StringVar(&cfg.SQLitePath)
	app.Flag("log-level", "debug, info, warn or error.").
		Envar(config.EnvLogLevel).Default(config.DefaultLogLevel).StringVar(&cfg.LogLevel)

	if _, err := app.Parse(args); err != nil {
		return err
	}

	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	if err := logger.InitLogger(level); err != nil {
		return err
	}
	defer logger.Sync()

	if levelErr != nil {
		logger.Warn("Unknown log level, using info", zap.String("log_level", cfg.LogLevel))
	}
	if !dotenv {
		logger.Debug("No .env found, using local environment")
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	cfg.Log()

	if err := cfg.CheckInputDir(); err != nil {
		return fmt.Errorf("%w: %s", err, cfg.InputDir)
	}

	rctx := &handler.RunContext{}

	if cfg.SQLitePath != "" {
		sdb, err := mydb.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open %s: %w", cfg.SQLitePath, err)
		}
		defer sdb.Close()
		rctx.Summary_DB = sdb
		logger.Info("Export to SQLite", zap.String("DB_LOC", cfg.SQLitePath))
	}

	_, err := rctx.SummarizeRegions(ctx, request.RegionSummaryRequest{
		Input_Dir:              cfg.InputDir,
		Regions_Out:            cfg.RegionsOut,
		Cand_Clusters_Out:      cfg.CandClustersOut,
		Protoclusters_Out:      cfg.ProtoclustersOut,
		Candidate_Cluster_Type: *candType,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Dataframes saved to '%s', '%s', and '%s'.\n", cfg.RegionsOut, cfg.CandClustersOut, cfg.ProtoclustersOut)
	return nil
}
