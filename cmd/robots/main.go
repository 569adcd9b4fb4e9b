package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"robotgrid/internal/config"
	"robotgrid/internal/interpreter"
	"robotgrid/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	logLevel := flag.String("log-level", "", "Override log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Override log format (console, json)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input file|->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), os.Stdin, os.Stdout, cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		log.Sync()
		stop()
		os.Exit(1)
	}
}

// run reads the input named by path, or stdin when path is "-", and writes
// results to stdout.
func run(ctx context.Context, path string, stdin io.Reader, stdout io.Writer, cfg config.Config, log *zap.Logger) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return interpreter.Run(ctx, in, stdout, interpreter.Options{
		SkipBlankLines: *cfg.Input.SkipBlankLines,
		Logger:         log.With(zap.String("input", path)),
	})
}
