// biosyngenes extracts biosynthetic genes from an antiSMASH JSON result into a TSV table.
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
)

const VERSION = "0.1.0"

func main() {
	// Default logger until the flags are parsed
	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Fatal("biosyngenes failed", zap.Error(err))
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {

	// .env has to be in the environment before kingpin reads Envar defaults.
	dotenv := config.LoadDotEnv()

	app := kingpin.New("biosyngenes", "Extract biosynthetic genes from antiSMASH JSON output.")
	app.Version(VERSION)

	inputFile := app.Arg("input_file", "Path to the antiSMASH JSON input file").Required().String()
	outputFile := app.Arg("output_file", "Path to save the biosynthetic genes TSV output file").Required().String()
	globalIndex := app.Flag("global-domain-index", "Index PFAM domains across all records instead of per record.").Bool()
	sqlitePath := app.Flag("sqlite", "Also export the genes into this SQLite database.").Envar(config.EnvSQLite).String()
	logLevel := app.Flag("log-level", "debug, info, warn or error.").Envar(config.EnvLogLevel).Default(config.DefaultLogLevel).String()

	if _, err := app.Parse(args); err != nil {
		return err
	}

	level, levelErr := logger.ParseLevel(*logLevel)
	if err := logger.InitLogger(level); err != nil {
		return err
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if levelErr != nil {
		logger.Warn("Unknown log level, using info", zap.String("log_level", *logLevel))
	}
	if !dotenv {
		logger.Debug("No .env found, using local environment")
	}

	logger.Info("Start:", zap.String("Version", VERSION))

	rctx := &handler.RunContext{}

	if *sqlitePath != "" {
		sdb, err := mydb.Open(ctx, *sqlitePath)
		if err != nil {
			return fmt.Errorf("open %s: %w", *sqlitePath, err)
		}
		defer sdb.Close()
		rctx.Summary_DB = sdb
		logger.Info("Export to SQLite", zap.String("DB_LOC", *sqlitePath))
	}

	_, err := rctx.ExtractBiosyntheticGenes(ctx, request.GeneExtractRequest{
		Input_File:        *inputFile,
		Output_File:       *outputFile,
		GlobalDomainIndex: *globalIndex,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Biosynthetic gene information has been saved to %s\n", *outputFile)
	return nil
}
