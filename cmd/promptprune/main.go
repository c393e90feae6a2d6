package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/config"
	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
	"github.com/VisheshJha/PromptPrune-sub000/internal/pipeline"
	"github.com/VisheshJha/PromptPrune-sub000/internal/semantic"
)

var (
	// Global flags
	cfgPath string
	debug   bool

	// Assembled in PersistentPreRunE, shared by every subcommand.
	cfg       *config.Config
	svc       semantic.Service
	optimizer *pipeline.Optimizer
	stopWatch func()
)

var rootCmd = &cobra.Command{
	Use:   "promptprune",
	Short: "PromptPrune - prompt optimization engine",
	Long: `PromptPrune turns rough free-text requests into structured prompts.

It corrects typos, extracts the intent (action, topic, format, audience,
tone, role, constraints), and renders the result through eight prompt
frameworks (CoT, ToT, APE, RACE, ROSES, GUIDE, SMART, CREATE), ranked by
fit. An optional embedding service refines extraction and ranking; when
it is absent or slow, everything degrades to rule-based scoring.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if debug {
			cfg.Debug = true
		}
		if err := logging.Initialize(cfg.Debug); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		log := logging.Get(logging.CategoryBoot)

		svc, err = semantic.NewServiceFromConfig(cfg.Semantic)
		if err != nil {
			log.Warn("semantic service unavailable, running rule-based only", zap.Error(err))
			svc = nil
		}

		optimizer = pipeline.New(cfg, svc)

		if cfg.DictionaryPath != "" {
			stopWatch, err = config.Watch(cfg.DictionaryPath, optimizer.ReloadDictionary)
			if err != nil {
				log.Warn("dictionary watch disabled", zap.Error(err))
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stopWatch != nil {
			stopWatch()
		}
		if svc != nil {
			_ = svc.Close()
		}
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(frameworksCmd)
}

// promptFromArgs joins the positional arguments into the prompt text, or
// reads stdin when the single argument is "-".
func promptFromArgs(args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
