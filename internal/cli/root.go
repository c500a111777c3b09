package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	opts := DefaultGameOptions()
	var headless bool

	rootCmd := &cobra.Command{
		Use:   "game2048",
		Short: "Play 2048 in the terminal",
		Long: `game2048 is the sliding tile puzzle for the terminal.

Slide tiles with W/A/S/D or the arrow keys. Equal tiles merge into their sum;
reach the target tile to win. R starts a new game and Q exits.

Run without a subcommand to start playing. Finished games are recorded in
the configured storage and can be listed with the history command.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts, headless)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: GAME2048_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file (env: GAME2048_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Game history storage: memory, redis (env: GAME2048_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: GAME2048_REDIS_URL)")
	rootCmd.PersistentFlags().DurationVar(&cfg.HistoryTTL, "history-ttl", cfg.HistoryTTL, "Expire games stored in redis after this long (0 keeps them)")

	addGameFlags(rootCmd, &opts)
	addHeadlessFlag(rootCmd, &headless)

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newAutoplayCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
