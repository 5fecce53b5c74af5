package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

var (
	verbose     bool
	contentPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a one-page personal portfolio: hero with a spinning cube,
about me, work experience, academic projects and contact.

Content is read from a JSON or YAML file, or the built-in sample when none is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content file (default is $CONTENT_PATH, then the built-in sample)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadSettings merges environment and flags and loads the content document.
func loadSettings(cmd *cobra.Command) (cfg config.Config, p content.Portfolio, err error) {
	cfg, err = config.FromEnv()
	if err != nil {
		return cfg, p, err
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = contentPath
	}

	if cfg.ContentPath == "" {
		logger.Info("No content file configured, using built-in sample")
		p = content.Default()
		return cfg, p, nil
	}

	p, err = content.Load(cfg.ContentPath)
	if err != nil {
		return cfg, p, err
	}
	logger.Info("Loaded content",
		zap.String("path", cfg.ContentPath),
		zap.Int("work_experience", len(p.WorkExperience)),
		zap.Int("projects", len(p.Projects)),
	)
	return cfg, p, nil
}
