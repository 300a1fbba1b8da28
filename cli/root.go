package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/illmade-knight/go-threadtrace/config"
	"github.com/illmade-knight/go-threadtrace/emit"
	"github.com/illmade-knight/go-threadtrace/run"
)

var (
	configPath string
	members    int
	free       int
	debug      bool
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "threadtrace",
	Short:   "Concurrency demo with sequenced, non-interleaved worker output",
	Long:    "Launches member-style and free-standing workers concurrently. Each worker emits one styled, timestamped, sequence-numbered record, and the process exits only after every worker has finished.",
	Version: Version,
	RunE:    runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().IntVar(&members, "members", 0, "number of member-style workers (overrides config)")
	rootCmd.PersistentFlags().IntVar(&free, "free", 0, "number of free-standing workers (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
}

func Execute() error {
	return rootCmd.Execute()
}

func runDemo(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("members") {
		cfg.Workers.Members = members
	}
	if cmd.Flags().Changed("free") {
		cfg.Workers.Free = free
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Demo records go to stdout through the emitter; operational logs stay
	// on stderr so the two streams never mix.
	seq := emit.NewSequence(1)
	theme := emit.Theme{Main: cfg.Theme.Main, Member: cfg.Theme.Member, Free: cfg.Theme.Free}
	emitter := emit.NewEmitter(os.Stdout, seq, theme, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := run.NewRunner(emitter, cfg.Workers.Members, cfg.Workers.Free, logger)
	return runner.Run(ctx)
}
